package ui

import "strings"

// Size is shared by every component that scales.
type Size string

const (
	SizeSm Size = "sm"
	SizeMd Size = "md"
	SizeLg Size = "lg"
)

type ButtonVariant string

const (
	ButtonVariantPrimary   ButtonVariant = "primary"
	ButtonVariantSecondary ButtonVariant = "secondary"
	ButtonVariantGhost     ButtonVariant = "ghost"
)

// DefaultLoadingText is shown next to the spinner of a loading button.
const DefaultLoadingText = "Loading..."

var buttonStyles = struct {
	base     string
	variants map[ButtonVariant]string
	sizes    map[Size]string
	disabled string
}{
	base: "inline-flex items-center justify-center font-medium rounded-lg transition focus:outline-none",
	variants: map[ButtonVariant]string{
		ButtonVariantPrimary:   "bg-blue-600 text-white hover:bg-blue-700",
		ButtonVariantSecondary: "bg-gray-200 text-gray-900 hover:bg-gray-300",
		ButtonVariantGhost:     "bg-transparent hover:bg-gray-100",
	},
	sizes: map[Size]string{
		SizeSm: "px-3 py-1 text-sm",
		SizeMd: "px-4 py-2 text-base",
		SizeLg: "px-5 py-3 text-lg",
	},
	disabled: "opacity-50 cursor-not-allowed",
}

// formStyles is shared by Input and Select.
var formStyles = struct {
	base       string
	label      string
	inputError string
	error      string
	sizes      map[Size]string
}{
	base: `
		block w-full rounded-lg border border-gray-300
		bg-transparent font-medium text-gray-900
		transition
		focus:outline-none focus:border-blue-600
		disabled:opacity-50 disabled:cursor-not-allowed
	`,
	label:      "mb-1 block text-sm font-medium text-gray-700",
	inputError: "border-red-500 focus:border-red-500",
	error:      "mt-2 text-xs text-red-600 font-medium",
	sizes: map[Size]string{
		SizeSm: "h-8 px-3 text-sm",
		SizeMd: "h-10 px-4 text-base",
		SizeLg: "h-12 px-5 text-lg",
	},
}

var spinnerStyles = struct {
	base  string
	sizes map[Size]string
}{
	base: "inline-block rounded-full border-solid border-current border-r-transparent align-[-0.125em] animate-spin motion-reduce:animate-[spin_1.5s_linear_infinite]",
	sizes: map[Size]string{
		SizeSm: "w-3 h-3 border-2",
		SizeMd: "w-4 h-4 border-2",
		SizeLg: "w-5 h-5 border-[3px]",
	},
}

const requiredIndicatorClass = "text-red-500 ml-0.5"

// sizeOr returns s when the table knows it, fallback otherwise.
func sizeOr(s Size, table map[Size]string, fallback Size) Size {
	if _, ok := table[s]; ok {
		return s
	}
	return fallback
}

func buttonVariants(v ButtonVariant, s Size) string {
	if _, ok := buttonStyles.variants[v]; !ok {
		v = ButtonVariantPrimary
	}
	s = sizeOr(s, buttonStyles.sizes, SizeMd)
	return strings.Join([]string{buttonStyles.sizes[s], buttonStyles.variants[v]}, " ")
}

// when returns class if cond holds.
func when(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
