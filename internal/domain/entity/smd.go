package entity

// SmdKind формат SMD-кода
type SmdKind string

const (
	SmdE24     SmdKind = "E24"
	SmdE96     SmdKind = "E96"
	SmdRFormat SmdKind = "R-format"
)

// SmdCode код на корпусе SMD-резистора
type SmdCode struct {
	Raw  string
	Kind SmdKind
}

func (c SmdCode) String() string {
	return c.Raw
}
