package validity

import "strings"

// Member types used by the member administration.
const (
	MemberTypeProfessional = "BF"
	MemberTypeVolunteer    = "FF"
	MemberTypeYouth        = "JF"
	MemberTypeCity         = "STADT"
	MemberTypeExternal     = "EXTERN"
	MemberTypeIntern       = "PRAKTIKANT"
)

// Policy maps a member type to the number of years its cards stay valid.
// Types without an entry use Options.Years.
type Policy map[string]int

// DefaultPolicy limits external staff and interns to one-year cards.
func DefaultPolicy() Policy {
	return Policy{
		MemberTypeExternal: 1,
		MemberTypeIntern:   1,
	}
}

// YearsFor returns the validity span for memberType, or fallback.
func (p Policy) YearsFor(memberType string, fallback int) int {
	memberType = strings.ToUpper(strings.TrimSpace(memberType))
	if memberType == "" || p == nil {
		return fallback
	}
	if years, ok := p[memberType]; ok && years > 0 {
		return years
	}
	return fallback
}

func (p Policy) clone() Policy {
	out := make(Policy, len(p))
	for k, v := range p {
		out[strings.ToUpper(strings.TrimSpace(k))] = v
	}
	return out
}
