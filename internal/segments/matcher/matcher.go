package matcher

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"push-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrUnknownConditionKind = errors.New("unknown condition kind")
	ErrInvalidCondition     = errors.New("invalid condition value")
)

// Conditions is the typed form of a segment's stored condition set. Each kind
// is an explicit field with its own evaluator; adding a kind means touching
// this struct, its parser, and Matches.
type Conditions struct {
	UserAgent *UserAgentCondition
	CreatedAt *CreatedAtCondition
	SiteID    *SiteIDCondition
}

// IsEmpty reports whether no condition kinds are present
func (c Conditions) IsEmpty() bool {
	return c.UserAgent == nil && c.CreatedAt == nil && c.SiteID == nil
}

// UserAgentCondition matches the subscription's user-agent string
// case-insensitively. A missing user-agent is treated as an empty string.
type UserAgentCondition struct {
	Contains    *string
	NotContains *string
}

func (c *UserAgentCondition) matches(sub store.Subscription) bool {
	ua := ""
	if sub.UserAgent != nil {
		ua = strings.ToLower(*sub.UserAgent)
	}
	if c.Contains != nil && !strings.Contains(ua, strings.ToLower(*c.Contains)) {
		return false
	}
	if c.NotContains != nil && strings.Contains(ua, strings.ToLower(*c.NotContains)) {
		return false
	}
	return true
}

// CreatedAtCondition bounds the subscription's creation time. Both bounds are
// exclusive: a subscription created exactly at the boundary does not match.
type CreatedAtCondition struct {
	After  *time.Time
	Before *time.Time
}

func (c *CreatedAtCondition) matches(sub store.Subscription) bool {
	if c.After != nil && !sub.CreatedAt.After(*c.After) {
		return false
	}
	if c.Before != nil && !sub.CreatedAt.Before(*c.Before) {
		return false
	}
	return true
}

// SiteIDCondition matches the subscription's site scope. A subscription with
// no site id never matches either predicate.
type SiteIDCondition struct {
	Equals *uuid.UUID
	In     []uuid.UUID
}

func (c *SiteIDCondition) matches(sub store.Subscription) bool {
	if sub.SiteID == nil {
		return false
	}
	if c.Equals != nil && *sub.SiteID != *c.Equals {
		return false
	}
	if c.In != nil {
		found := false
		for _, id := range c.In {
			if *sub.SiteID == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Matches evaluates a subscription against a condition set. All present kinds
// are AND-ed, any failing predicate rejects immediately, and an empty set
// matches everything. Pure: no I/O, no side effects, never panics on
// well-typed input.
func Matches(sub store.Subscription, conds Conditions) bool {
	if conds.UserAgent != nil && !conds.UserAgent.matches(sub) {
		return false
	}
	if conds.CreatedAt != nil && !conds.CreatedAt.matches(sub) {
		return false
	}
	if conds.SiteID != nil && !conds.SiteID.matches(sub) {
		return false
	}
	return true
}

// ParseConditions converts a segment's stored JSONB condition set into typed
// conditions. Unknown kinds and malformed values are rejected here, at segment
// validation and dispatch time, so Matches never sees them. Callers that hit a
// parse error on stored data must fail closed (match nothing) rather than let
// one bad segment take down a campaign send.
func ParseConditions(raw store.JSONB) (Conditions, error) {
	conds := Conditions{}
	if len(raw) == 0 {
		return conds, nil
	}

	for kind, value := range raw {
		obj, ok := value.(map[string]interface{})
		if !ok {
			return Conditions{}, fmt.Errorf("condition %q is not an object: %w", kind, ErrInvalidCondition)
		}

		switch kind {
		case "userAgent":
			cond, err := parseUserAgent(obj)
			if err != nil {
				return Conditions{}, err
			}
			conds.UserAgent = cond
		case "createdAt":
			cond, err := parseCreatedAt(obj)
			if err != nil {
				return Conditions{}, err
			}
			conds.CreatedAt = cond
		case "siteId":
			cond, err := parseSiteID(obj)
			if err != nil {
				return Conditions{}, err
			}
			conds.SiteID = cond
		default:
			return Conditions{}, fmt.Errorf("%w: %q", ErrUnknownConditionKind, kind)
		}
	}

	return conds, nil
}

func parseUserAgent(obj map[string]interface{}) (*UserAgentCondition, error) {
	cond := &UserAgentCondition{}
	for key, value := range obj {
		str, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("userAgent.%s is not a string: %w", key, ErrInvalidCondition)
		}
		switch key {
		case "contains":
			cond.Contains = &str
		case "notContains":
			cond.NotContains = &str
		default:
			return nil, fmt.Errorf("%w: userAgent.%s", ErrUnknownConditionKind, key)
		}
	}
	return cond, nil
}

func parseCreatedAt(obj map[string]interface{}) (*CreatedAtCondition, error) {
	cond := &CreatedAtCondition{}
	for key, value := range obj {
		str, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("createdAt.%s is not a string: %w", key, ErrInvalidCondition)
		}
		t, err := time.Parse(time.RFC3339, str)
		if err != nil {
			return nil, fmt.Errorf("createdAt.%s is not a valid timestamp: %w", key, ErrInvalidCondition)
		}
		switch key {
		case "after":
			cond.After = &t
		case "before":
			cond.Before = &t
		default:
			return nil, fmt.Errorf("%w: createdAt.%s", ErrUnknownConditionKind, key)
		}
	}
	return cond, nil
}

func parseSiteID(obj map[string]interface{}) (*SiteIDCondition, error) {
	cond := &SiteIDCondition{}
	for key, value := range obj {
		switch key {
		case "equals":
			str, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("siteId.equals is not a string: %w", ErrInvalidCondition)
			}
			id, err := uuid.Parse(str)
			if err != nil {
				return nil, fmt.Errorf("siteId.equals is not a valid uuid: %w", ErrInvalidCondition)
			}
			cond.Equals = &id
		case "in":
			list, ok := value.([]interface{})
			if !ok {
				return nil, fmt.Errorf("siteId.in is not a list: %w", ErrInvalidCondition)
			}
			ids := make([]uuid.UUID, 0, len(list))
			for _, item := range list {
				str, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("siteId.in contains a non-string: %w", ErrInvalidCondition)
				}
				id, err := uuid.Parse(str)
				if err != nil {
					return nil, fmt.Errorf("siteId.in contains an invalid uuid: %w", ErrInvalidCondition)
				}
				ids = append(ids, id)
			}
			cond.In = ids
		default:
			return nil, fmt.Errorf("%w: siteId.%s", ErrUnknownConditionKind, key)
		}
	}
	return cond, nil
}
