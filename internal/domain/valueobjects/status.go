package valueobjects

// LeadStatus é o estágio de qualificação de um lead.
// O conjunto é aberto: valores desconhecidos são aceitos e gravados como vieram.
type LeadStatus string

const (
	LeadStatusCold      LeadStatus = "cold"
	LeadStatusWarm      LeadStatus = "warm"
	LeadStatusHot       LeadStatus = "hot"
	LeadStatusQualified LeadStatus = "qualified"
)

// MagnetStatus é o estado de publicação de um lead magnet
type MagnetStatus string

const (
	MagnetStatusDraft  MagnetStatus = "draft"
	MagnetStatusActive MagnetStatus = "active"
	MagnetStatusPaused MagnetStatus = "paused"
)

// Is compara o status com um valor gravado
func (s LeadStatus) Is(value string) bool {
	return string(s) == value
}

// Is compara o status com um valor gravado
func (s MagnetStatus) Is(value string) bool {
	return string(s) == value
}

// IsKnown indica se o status pertence ao vocabulário observado
func (s LeadStatus) IsKnown() bool {
	switch s {
	case LeadStatusCold, LeadStatusWarm, LeadStatusHot, LeadStatusQualified:
		return true
	}
	return false
}

// IsKnown indica se o status pertence ao vocabulário observado
func (s MagnetStatus) IsKnown() bool {
	switch s {
	case MagnetStatusDraft, MagnetStatusActive, MagnetStatusPaused:
		return true
	}
	return false
}
