package domain

import "strings"

const (
	RoleTop     = "TOP"
	RoleJungle  = "JUNGLE"
	RoleMid     = "MID"
	RoleADC     = "ADC"
	RoleSupport = "SUPPORT"
	RoleUnknown = "UNKNOWN"

	// AllFilter disables a tier or role filter.
	AllFilter = "ALL"
)

var roleAliases = map[string]string{
	"TOP":     RoleTop,
	"JUNGLE":  RoleJungle,
	"MIDDLE":  RoleMid,
	"MID":     RoleMid,
	"BOTTOM":  RoleADC,
	"ADC":     RoleADC,
	"UTILITY": RoleSupport,
	"SUPPORT": RoleSupport,
}

// NormalizeRole maps provider positions onto the dashboard vocabulary.
// teamPosition wins over lane; nil means the game recorded neither.
func NormalizeRole(teamPosition, lane string) *string {
	for _, raw := range []string{teamPosition, lane} {
		v := strings.ToUpper(strings.TrimSpace(raw))
		if v == "" || v == "NONE" || v == "INVALID" {
			continue
		}
		if role, ok := roleAliases[v]; ok {
			return &role
		}
		return &v
	}
	return nil
}

// PatchPrefix keeps the major.minor part of a version such as "15.10.1".
func PatchPrefix(version string) string {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return version
	}
	return parts[0] + "." + parts[1]
}
