// internal/compiler/validate.go
package compiler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

/*
 * Validator boundary.
 *
 * The compiler calls the validator once per node after parsing; a
 * rejection becomes an invalid_option_value error for that node only.
 * The shipped rule set checks ranges, enum membership and identifier
 * shape. Rules are looked up by the one- or two-key suffix of the
 * rendered path, longest suffix first, so a rule like "port" covers
 * every port-shaped option while "tls.module" stays specific.
 *
 * Enum membership is a closed whitelist with an error fallback:
 * operator-supplied strings never extend the value universe.
 */

// Validator checks a node's parsed result against domain rules.
type Validator interface {
	Validate(p types.Path, opts []types.Option) error
}

type ruleFunc func(v any) error

// RuleSet is the default Validator implementation.
type RuleSet struct {
	rules map[string]ruleFunc
}

// DefaultValidator returns the built-in domain rule set.
func DefaultValidator() *RuleSet {
	r := &RuleSet{rules: make(map[string]ruleFunc)}

	r.add("general.hosts", checkTenants)
	r.add("general.loglevel", enum("none", "emergency", "alert", "critical", "error", "warning", "notice", "info", "debug", "all"))
	r.add("general.language", checkNonEmpty)
	r.add("general.max_fsm_queue", checkPositive)
	r.add("general.sm_backend", enum("mnesia", "redis"))
	r.add("general.replaced_wait_timeout", checkPositive)
	r.add("general.registration_timeout", checkPositiveOrInfinity)

	r.add("port", checkPort)
	r.add("backlog", checkNonNegative)
	r.add("max_stanza_size", checkPositive)
	r.add("max_rate", checkPositive)
	r.add("workers", checkPositive)
	r.add("scope", enum("global", "host"))
	r.add("strategy", enum("best_worker", "random_worker", "next_worker", "available_worker"))

	r.add("tls.module", enum("just_tls", "fast_tls"))
	r.add("tls.verify_mode", enum("peer", "selfsigned_peer", "none"))
	r.add("connection.driver", enum("pgsql", "mysql", "redis"))

	r.add("auth.methods", enum("internal", "rdbms", "anonymous", "ldap", "external"))
	r.add("password.format", enum("plain", "scram"))
	r.add("password.hash", enum("sha", "sha256", "sha384", "sha512"))

	r.add("s2s.use_starttls", enum("false", "optional", "required", "required_trusted"))
	r.add("s2s.default_policy", enum("allow", "deny"))

	r.add("mod_vcard.host", checkNonEmpty)
	r.add("mod_vcard.matches", checkPositiveOrInfinity)
	r.add("mod_bosh.inactivity", checkPositive)
	r.add("initial_report", checkPositive)
	r.add("periodic_report", checkPositive)
	r.add("connection_timeout", checkPositive)

	return r
}

func (r *RuleSet) add(suffix string, rule ruleFunc) {
	r.rules[suffix] = rule
}

// Validate applies the matching rule, if any, to every directive the
// node produced. Error records and deferred values pass through
// untouched; they are someone else's business.
func (r *RuleSet) Validate(p types.Path, opts []types.Option) error {
	rule := r.lookup(p)
	if rule == nil {
		return nil
	}
	return applyRule(rule, opts)
}

// probeTenant stands in for a real tenant when a deferred value is
// expanded for validation only. Deferral re-labels values without
// changing them, so one probe expansion sees what every tenant will.
const probeTenant = "localhost"

func applyRule(rule ruleFunc, opts []types.Option) error {
	for _, o := range opts {
		var v any
		switch d := o.(type) {
		case types.GlobalDirective:
			v = d.Value
		case types.TenantDirective:
			v = d.Value
		case types.DeferredTenantFn:
			if err := applyRule(rule, d(probeTenant)); err != nil {
				return err
			}
			continue
		default:
			continue
		}
		if err := rule(v); err != nil {
			return err
		}
	}
	return nil
}

func (r *RuleSet) lookup(p types.Path) ruleFunc {
	var keys []string
	for _, s := range p {
		if s.Key != "" {
			keys = append(keys, s.Key)
			if len(keys) == 2 {
				break
			}
		}
	}
	if len(keys) == 2 {
		if rule, ok := r.rules[keys[1]+"."+keys[0]]; ok {
			return rule
		}
	}
	if len(keys) >= 1 {
		if rule, ok := r.rules[keys[0]]; ok {
			return rule
		}
	}
	return nil
}

func enum(allowed ...string) ruleFunc {
	sort.Strings(allowed)
	return func(v any) error {
		check := func(s string) error {
			i := sort.SearchStrings(allowed, s)
			if i < len(allowed) && allowed[i] == s {
				return nil
			}
			return fmt.Errorf("%q is not one of: %s", s, strings.Join(allowed, ", "))
		}
		switch x := v.(type) {
		case string:
			return check(x)
		case []string:
			for _, s := range x {
				if err := check(s); err != nil {
					return err
				}
			}
			return nil
		}
		return fmt.Errorf("want a string, got %T", v)
	}
}

func checkTenants(v any) error {
	switch x := v.(type) {
	case string:
		if !types.IsTenantID(x) {
			return fmt.Errorf("%w: %q", types.ErrBadTenantID, x)
		}
		return nil
	case []string:
		if len(x) == 0 {
			return types.ErrNoTenants
		}
		seen := make(map[string]struct{}, len(x))
		for _, h := range x {
			if _, dup := seen[h]; dup {
				return fmt.Errorf("duplicate tenant %q", h)
			}
			seen[h] = struct{}{}
		}
		return nil
	}
	return fmt.Errorf("want a host list, got %T", v)
}

func checkNonEmpty(v any) error {
	if s, ok := v.(string); ok && s != "" {
		return nil
	}
	return fmt.Errorf("want a non-empty string, got %v", v)
}

func checkPositive(v any) error {
	if n, ok := v.(int); ok && n > 0 {
		return nil
	}
	return fmt.Errorf("want a positive integer, got %v", v)
}

func checkNonNegative(v any) error {
	if n, ok := v.(int); ok && n >= 0 {
		return nil
	}
	return fmt.Errorf("want a non-negative integer, got %v", v)
}

func checkPositiveOrInfinity(v any) error {
	if s, ok := v.(string); ok {
		if s == "infinity" {
			return nil
		}
		return fmt.Errorf("want a positive integer or %q, got %q", "infinity", s)
	}
	return checkPositive(v)
}

func checkPort(v any) error {
	n, ok := v.(int)
	if !ok || n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %v", v)
	}
	return nil
}
