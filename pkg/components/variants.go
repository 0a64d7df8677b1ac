package components

// Size is the shared size scale.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

// Valid reports whether s is a known size.
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

func (s Size) orDefault() Size {
	if s.Valid() {
		return s
	}
	return SizeMedium
}

// Variant is the visual emphasis of buttons and similar controls.
type Variant string

const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantOutline   Variant = "outline"
	VariantGhost     Variant = "ghost"
	VariantDanger    Variant = "danger"
)

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	switch v {
	case VariantPrimary, VariantSecondary, VariantOutline, VariantGhost, VariantDanger:
		return true
	}
	return false
}

func (v Variant) orDefault() Variant {
	if v.Valid() {
		return v
	}
	return VariantPrimary
}

// Position places a floating surface relative to its trigger. Placement is
// done entirely by CSS class.
type Position string

const (
	PositionTop         Position = "top"
	PositionTopStart    Position = "top-start"
	PositionTopEnd      Position = "top-end"
	PositionBottom      Position = "bottom"
	PositionBottomStart Position = "bottom-start"
	PositionBottomEnd   Position = "bottom-end"
	PositionLeft        Position = "left"
	PositionRight       Position = "right"
)

// Positions lists every position.
var Positions = []Position{
	PositionTop, PositionTopStart, PositionTopEnd,
	PositionBottom, PositionBottomStart, PositionBottomEnd,
	PositionLeft, PositionRight,
}

// Valid reports whether p is a known position.
func (p Position) Valid() bool {
	for _, known := range Positions {
		if p == known {
			return true
		}
	}
	return false
}

func (p Position) orDefault() Position {
	if p.Valid() {
		return p
	}
	return PositionBottom
}

// Align is the horizontal alignment of a menu against its trigger.
type Align string

const (
	AlignStart Align = "start"
	AlignEnd   Align = "end"
)

func (a Align) orDefault() Align {
	if a == AlignEnd {
		return a
	}
	return AlignStart
}

// Direction is a layout axis.
type Direction string

const (
	DirectionHorizontal Direction = "horizontal"
	DirectionVertical   Direction = "vertical"
)

func (d Direction) orDefault() Direction {
	if d == DirectionVertical {
		return d
	}
	return DirectionHorizontal
}

// DrawerSide is the edge a drawer slides in from.
type DrawerSide string

const (
	DrawerLeft  DrawerSide = "left"
	DrawerRight DrawerSide = "right"
)

func (s DrawerSide) orDefault() DrawerSide {
	if s == DrawerLeft {
		return s
	}
	return DrawerRight
}

// DrawerSize is the drawer width step.
type DrawerSize string

const (
	DrawerSmall  DrawerSize = "sm"
	DrawerMedium DrawerSize = "md"
	DrawerLarge  DrawerSize = "lg"
	DrawerFull   DrawerSize = "full"
)

func (s DrawerSize) orDefault() DrawerSize {
	switch s {
	case DrawerSmall, DrawerMedium, DrawerLarge, DrawerFull:
		return s
	}
	return DrawerMedium
}

// AlertVariant selects the tone and icon of an alert dialog.
type AlertVariant string

const (
	AlertDefault AlertVariant = "default"
	AlertDanger  AlertVariant = "danger"
	AlertWarning AlertVariant = "warning"
)

func (v AlertVariant) orDefault() AlertVariant {
	switch v {
	case AlertDanger, AlertWarning:
		return v
	}
	return AlertDefault
}

// TabsVariant is the tab strip style.
type TabsVariant string

const (
	TabsUnderline TabsVariant = "underline"
	TabsPills     TabsVariant = "pills"
	TabsEnclosed  TabsVariant = "enclosed"
)

func (v TabsVariant) orDefault() TabsVariant {
	switch v {
	case TabsPills, TabsEnclosed:
		return v
	}
	return TabsUnderline
}

// CarouselNav selects which carousel controls render.
type CarouselNav string

const (
	CarouselArrows CarouselNav = "arrows"
	CarouselDots   CarouselNav = "dots"
	CarouselBoth   CarouselNav = "both"
	CarouselNone   CarouselNav = "none"
)

func (n CarouselNav) orDefault() CarouselNav {
	switch n {
	case CarouselArrows, CarouselDots, CarouselNone:
		return n
	}
	return CarouselBoth
}

func (n CarouselNav) arrows() bool { return n == CarouselArrows || n == CarouselBoth }

func (n CarouselNav) dots() bool { return n == CarouselDots || n == CarouselBoth }

// ToastVariant is the tone of a toast.
type ToastVariant string

const (
	ToastInfo    ToastVariant = "info"
	ToastSuccess ToastVariant = "success"
	ToastWarning ToastVariant = "warning"
	ToastError   ToastVariant = "error"
)

func (v ToastVariant) orDefault() ToastVariant {
	switch v {
	case ToastSuccess, ToastWarning, ToastError:
		return v
	}
	return ToastInfo
}

// Gap is the spacing step used by layout primitives.
type Gap string

const (
	GapNone Gap = "none"
	GapXS   Gap = "xs"
	GapSM   Gap = "sm"
	GapMD   Gap = "md"
	GapLG   Gap = "lg"
	GapXL   Gap = "xl"
)

func (g Gap) orDefault() Gap {
	switch g {
	case GapNone, GapXS, GapSM, GapLG, GapXL:
		return g
	}
	return GapMD
}
