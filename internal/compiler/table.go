// internal/compiler/table.go
package compiler

/*
 * The dispatch table.
 *
 * One entry per recognized path shape, grouped by section. The total
 * order of entries is significant and must be preserved: the scan is
 * first-match-wins, and several short generic patterns (section roots
 * such as "access" or "shaper") would also match deeper paths that end
 * in the same key, so the deeper, more specific entries are always
 * listed before them. The same rule puts tag-qualified TLS and
 * connection entries before their shared fallback counterparts, and
 * host_config-scoped entries before the root-level entries they
 * shadow.
 *
 * A generic schema cannot express this context sensitivity without
 * duplicating itself per context; the explicit table keeps every
 * path's behavior traceable to exactly one line.
 */

func (c *compiler) buildTable() []entry {
	return []entry{
		// host_config: entries that shadow root-level sections come first.
		{[]patSeg{key("general"), tenant(), key("host_config")}, c.handleHostGeneral},
		{[]patSeg{key("host"), tenant(), key("host_config")}, c.handleHostField},
		{[]patSeg{tenant(), key("host_config")}, c.handleHostConfig},
		{[]patSeg{key("host_config")}, c.handleHostConfigSection},

		// general
		{[]patSeg{item(), key("hosts"), key("general")}, c.stringItem},
		{[]patSeg{key("hosts"), key("general")}, c.handleHosts},
		{[]patSeg{key("loglevel"), key("general")}, c.stringOption},
		{[]patSeg{key("language"), key("general")}, c.stringOption},
		{[]patSeg{key("max_fsm_queue"), key("general")}, c.intOption},
		{[]patSeg{key("sm_backend"), key("general")}, c.stringOption},
		{[]patSeg{key("replaced_wait_timeout"), key("general")}, c.deferredInt},
		{[]patSeg{key("registration_timeout"), key("general")}, c.deferredIntOrInfinity},
		{[]patSeg{item(), key("override"), key("general")}, c.handleOverrideItem},
		{[]patSeg{key("override"), key("general")}, c.handleOverride},
		{[]patSeg{key("general")}, c.handleGeneral},

		// listen: leaf options of a listener table
		{[]patSeg{key("port"), item(), anyKey(), key("listen")}, c.intOption},
		{[]patSeg{key("ip_address"), item(), anyKey(), key("listen")}, c.stringOption},
		{[]patSeg{key("backlog"), item(), anyKey(), key("listen")}, c.intOption},
		{[]patSeg{key("proxy_protocol"), item(), anyKey(), key("listen")}, c.boolOption},
		{[]patSeg{key("access"), item(), anyKey(), key("listen")}, c.stringOption},
		{[]patSeg{key("shaper"), item(), anyKey(), key("listen")}, c.stringOption},
		{[]patSeg{key("max_stanza_size"), item(), anyKey(), key("listen")}, c.intOption},
		{[]patSeg{key("password"), item(), anyKey(), key("listen")}, c.stringOption},

		// listen: TLS vocabularies, module-specific before shared
		{[]patSeg{key("verify_peer"), tag("tls", "just_tls")}, c.boolOption},
		{[]patSeg{key("disconnect_on_failure"), tag("tls", "just_tls")}, c.boolOption},
		{[]patSeg{key("verify_mode"), tag("tls", "fast_tls")}, c.stringOption},
		{[]patSeg{key("ciphers"), tag("tls", "fast_tls")}, c.stringOption},
		{[]patSeg{key("module"), anyTag("tls")}, c.stringOption},
		{[]patSeg{key("certfile"), anyTag("tls")}, c.stringOption},
		{[]patSeg{key("cacertfile"), anyTag("tls")}, c.stringOption},
		{[]patSeg{key("dhfile"), anyTag("tls")}, c.stringOption},
		{[]patSeg{anyTag("tls"), item(), anyKey(), key("listen")}, c.handleListenerTLS},

		// listen: structure
		{[]patSeg{item(), anyKey(), key("listen")}, c.handleListener},
		{[]patSeg{anyKey(), key("listen")}, c.handleListenerGroup},
		{[]patSeg{key("listen")}, c.handleListen},

		// auth (also reached under host_config by suffix match)
		{[]patSeg{item(), key("methods"), key("auth")}, c.stringItem},
		{[]patSeg{key("methods"), key("auth")}, c.handleAuthMethods},
		{[]patSeg{key("format"), key("password"), key("auth")}, c.stringOption},
		{[]patSeg{item(), key("hash"), key("password"), key("auth")}, c.stringItem},
		{[]patSeg{key("hash"), key("password"), key("auth")}, c.handlePasswordHash},
		{[]patSeg{key("password"), key("auth")}, c.handleAuthPassword},
		{[]patSeg{key("allow_multiple_connections"), key("anonymous"), key("auth")}, c.boolOption},
		{[]patSeg{key("anonymous"), key("auth")}, c.handleAuthAnonymous},
		{[]patSeg{key("auth")}, c.handleAuth},

		// outgoing_pools: driver-specific connection options first
		{[]patSeg{key("database"), tag("connection", "redis")}, c.intOption},
		{[]patSeg{key("database"), tag("connection", "pgsql")}, c.stringOption},
		{[]patSeg{key("database"), tag("connection", "mysql")}, c.stringOption},
		{[]patSeg{key("username"), tag("connection", "pgsql")}, c.stringOption},
		{[]patSeg{key("username"), tag("connection", "mysql")}, c.stringOption},
		{[]patSeg{key("host"), anyTag("connection")}, c.stringOption},
		{[]patSeg{key("port"), anyTag("connection")}, c.intOption},
		{[]patSeg{key("password"), anyTag("connection")}, c.stringOption},
		{[]patSeg{key("driver"), anyTag("connection")}, c.stringOption},
		{[]patSeg{anyTag("connection"), anyKey(), anyKey(), key("outgoing_pools")}, c.handleConnection},

		// outgoing_pools: pool structure, pool entries before type
		// entries so a pool named after its own type still dispatches
		// as a pool
		{[]patSeg{key("scope"), anyKey(), anyKey(), key("outgoing_pools")}, c.stringOption},
		{[]patSeg{key("workers"), anyKey(), anyKey(), key("outgoing_pools")}, c.intOption},
		{[]patSeg{key("strategy"), anyKey(), anyKey(), key("outgoing_pools")}, c.stringOption},
		{[]patSeg{anyKey(), key("rdbms"), key("outgoing_pools")}, c.handlePool},
		{[]patSeg{anyKey(), key("redis"), key("outgoing_pools")}, c.handlePool},
		{[]patSeg{key("rdbms"), key("outgoing_pools")}, c.handlePoolType},
		{[]patSeg{key("redis"), key("outgoing_pools")}, c.handlePoolType},
		{[]patSeg{key("outgoing_pools")}, c.handlePoolSection},

		// shaper
		{[]patSeg{key("max_rate"), anyKey(), key("shaper")}, c.intOption},
		{[]patSeg{anyKey(), key("shaper")}, c.handleShaper},
		{[]patSeg{key("shaper")}, c.handleShaperSection},

		// acl
		{[]patSeg{key("user"), item(), anyKey(), key("acl")}, c.stringOption},
		{[]patSeg{key("server"), item(), anyKey(), key("acl")}, c.stringOption},
		{[]patSeg{key("resource"), item(), anyKey(), key("acl")}, c.stringOption},
		{[]patSeg{item(), anyKey(), key("acl")}, c.handleACLSpec},
		{[]patSeg{anyKey(), key("acl")}, c.handleACL},
		// an access rule references an acl by name; that leaf must not
		// fall into the acl section root below
		{[]patSeg{key("acl"), item(), anyKey(), key("access")}, c.stringOption},
		{[]patSeg{key("acl")}, c.handleACLSection},

		// access
		{[]patSeg{key("value"), item(), anyKey(), key("access")}, c.anyScalarOption},
		{[]patSeg{item(), anyKey(), key("access")}, c.handleAccessRuleItem},
		{[]patSeg{anyKey(), key("access")}, c.handleAccessRule},
		{[]patSeg{key("access")}, c.handleAccessSection},

		// s2s
		{[]patSeg{key("use_starttls"), key("s2s")}, c.stringOption},
		{[]patSeg{key("certfile"), key("s2s")}, c.stringOption},
		{[]patSeg{key("default_policy"), key("s2s")}, c.stringOption},
		{[]patSeg{key("port"), key("outgoing"), key("s2s")}, c.intOption},
		{[]patSeg{key("connection_timeout"), key("outgoing"), key("s2s")}, c.intOption},
		{[]patSeg{key("outgoing"), key("s2s")}, c.handleS2SOutgoing},
		{[]patSeg{key("host"), item(), key("address"), key("s2s")}, c.stringOption},
		{[]patSeg{key("ip_address"), item(), key("address"), key("s2s")}, c.stringOption},
		{[]patSeg{item(), key("address"), key("s2s")}, c.handleS2SAddressItem},
		{[]patSeg{key("address"), key("s2s")}, c.handleS2SAddress},
		{[]patSeg{key("s2s")}, c.handleS2S},

		// services
		{[]patSeg{item(), key("submods"), key("service_admin_extra"), key("services")}, c.stringItem},
		{[]patSeg{key("submods"), key("service_admin_extra"), key("services")}, c.handleSubmods},
		{[]patSeg{key("service_admin_extra"), key("services")}, c.handleService},
		{[]patSeg{key("initial_report"), key("service_mongoose_system_metrics"), key("services")}, c.intOption},
		{[]patSeg{key("periodic_report"), key("service_mongoose_system_metrics"), key("services")}, c.intOption},
		{[]patSeg{key("service_mongoose_system_metrics"), key("services")}, c.handleService},
		{[]patSeg{key("services")}, c.handleServices},

		// modules (also reached under host_config by suffix match)
		{[]patSeg{key("access_max_user_messages"), key("mod_offline"), key("modules")}, c.stringOption},
		{[]patSeg{key("backend"), key("mod_offline"), key("modules")}, c.stringOption},
		{[]patSeg{key("mod_offline"), key("modules")}, c.handleModule},
		{[]patSeg{key("host"), key("mod_vcard"), key("modules")}, c.stringOption},
		{[]patSeg{key("search"), key("mod_vcard"), key("modules")}, c.boolOption},
		{[]patSeg{key("matches"), key("mod_vcard"), key("modules")}, c.intOrInfinity},
		{[]patSeg{key("mod_vcard"), key("modules")}, c.handleModule},
		{[]patSeg{key("inactivity"), key("mod_bosh"), key("modules")}, c.intOption},
		{[]patSeg{key("server_acks"), key("mod_bosh"), key("modules")}, c.boolOption},
		{[]patSeg{key("mod_bosh"), key("modules")}, c.handleModule},
		{[]patSeg{key("modules")}, c.handleModules},
	}
}
