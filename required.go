package eventsub

import (
	"fmt"
	"strings"
	"text/template"
)

// RequiredSubscription declares one EventSub subscription that an application
// needs in order to function: the (type, version) pair to register, the
// condition to register it with, and any OAuth scopes the broadcaster must
// have granted before registration will succeed. Condition fields may use
// text/template syntax, with values substituted from a
// RequiredSubscriptionConditionParams at registration time.
type RequiredSubscription struct {
	Type               EventType
	Version            string
	TemplatedCondition Condition
	RequiredScopes     []string
}

// RequiredSubscriptions is the full set of subscriptions an application
// declares up front, in the manner of a static config table.
type RequiredSubscriptions []RequiredSubscription

// GetRequiredUserScopes flattens the set of user OAuth scopes required
// across all subscriptions, without duplicates.
func (s RequiredSubscriptions) GetRequiredUserScopes() []string {
	seen := make(map[string]struct{})
	scopes := make([]string, 0, len(s))
	for _, required := range s {
		for _, scope := range required.RequiredScopes {
			if _, ok := seen[scope]; ok {
				continue
			}
			seen[scope] = struct{}{}
			scopes = append(scopes, scope)
		}
	}
	return scopes
}

// RequiredSubscriptionConditionParams carries the values that can be
// interpolated into a RequiredSubscription's templated condition.
type RequiredSubscriptionConditionParams struct {
	ChannelUserId string
}

// Format substitutes this set of params into every non-empty field of the
// given templated condition, returning the concrete condition to register.
func (p *RequiredSubscriptionConditionParams) Format(cond *Condition) (*Condition, error) {
	result := *cond
	for _, field := range []*string{
		&result.BroadcasterUserID,
		&result.FromBroadcasterUserID,
		&result.ModeratorUserID,
		&result.ToBroadcasterUserID,
		&result.RewardID,
		&result.ClientID,
		&result.ExtensionClientID,
		&result.UserID,
	} {
		if *field == "" {
			continue
		}
		formatted, err := p.formatField(*field)
		if err != nil {
			return nil, err
		}
		*field = formatted
	}
	return &result, nil
}

func (p *RequiredSubscriptionConditionParams) formatField(value string) (string, error) {
	t, err := template.New("condition").Parse(value)
	if err != nil {
		return "", fmt.Errorf("failed to parse condition field template: %w", err)
	}
	var sb strings.Builder
	if err := t.Execute(&sb, p); err != nil {
		return "", fmt.Errorf("failed to execute condition field template: %w", err)
	}
	return sb.String(), nil
}
