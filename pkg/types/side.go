package types

// SideType define side type of order
type SideType string

const (
	SideTypeBuy  = SideType("buy")
	SideTypeSell = SideType("sell")
)

func (side SideType) String() string {
	return string(side)
}
