// Package ui holds the presentational primitives shared by every page:
// buttons, badges, cards, alerts and the section/container layout wrappers.
// Each primitive renders an escaped HTML fragment from explicit variants.
package ui

import "strings"

// ButtonVariant selects the button color scheme.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonAccent    ButtonVariant = "accent"
	ButtonOutline   ButtonVariant = "outline"
	ButtonGhost     ButtonVariant = "ghost"
)

// ButtonSize selects the button padding and type scale.
type ButtonSize string

const (
	ButtonSM ButtonSize = "sm"
	ButtonMD ButtonSize = "md"
	ButtonLG ButtonSize = "lg"
	ButtonXL ButtonSize = "xl"
)

// BadgeVariant selects the badge color scheme.
type BadgeVariant string

const (
	BadgePrimary   BadgeVariant = "primary"
	BadgeSecondary BadgeVariant = "secondary"
	BadgeSuccess   BadgeVariant = "success"
	BadgeWarning   BadgeVariant = "warning"
	BadgeDanger    BadgeVariant = "danger"
	BadgeInfo      BadgeVariant = "info"
)

// BadgeSize selects the badge type scale.
type BadgeSize string

const (
	BadgeSM BadgeSize = "sm"
	BadgeMD BadgeSize = "md"
	BadgeLG BadgeSize = "lg"
)

// ContainerSize caps the content width.
type ContainerSize string

const (
	ContainerSM   ContainerSize = "sm"
	ContainerMD   ContainerSize = "md"
	ContainerLG   ContainerSize = "lg"
	ContainerXL   ContainerSize = "xl"
	ContainerFull ContainerSize = "full"
)

// SectionSize selects vertical padding.
type SectionSize string

const (
	SectionSM SectionSize = "sm"
	SectionMD SectionSize = "md"
	SectionLG SectionSize = "lg"
)

// SectionBackground selects the section backdrop.
type SectionBackground string

const (
	BackgroundDefault  SectionBackground = "default"
	BackgroundMuted    SectionBackground = "muted"
	BackgroundGradient SectionBackground = "gradient"
	BackgroundDark     SectionBackground = "dark"
)

func (v ButtonVariant) normalize() ButtonVariant {
	switch v {
	case ButtonPrimary, ButtonSecondary, ButtonAccent, ButtonOutline, ButtonGhost:
		return v
	}
	return ButtonPrimary
}

func (s ButtonSize) normalize() ButtonSize {
	switch s {
	case ButtonSM, ButtonMD, ButtonLG, ButtonXL:
		return s
	}
	return ButtonMD
}

func (v BadgeVariant) normalize() BadgeVariant {
	switch v {
	case BadgePrimary, BadgeSecondary, BadgeSuccess, BadgeWarning, BadgeDanger, BadgeInfo:
		return v
	}
	return BadgePrimary
}

func (s BadgeSize) normalize() BadgeSize {
	switch s {
	case BadgeSM, BadgeMD, BadgeLG:
		return s
	}
	return BadgeMD
}

func (s ContainerSize) normalize() ContainerSize {
	switch s {
	case ContainerSM, ContainerMD, ContainerLG, ContainerXL, ContainerFull:
		return s
	}
	return ContainerLG
}

func (s SectionSize) normalize() SectionSize {
	switch s {
	case SectionSM, SectionMD, SectionLG:
		return s
	}
	return SectionMD
}

func (b SectionBackground) normalize() SectionBackground {
	switch b {
	case BackgroundDefault, BackgroundMuted, BackgroundGradient, BackgroundDark:
		return b
	}
	return BackgroundDefault
}

// classes joins non-empty class names with single spaces.
func classes(names ...string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}
