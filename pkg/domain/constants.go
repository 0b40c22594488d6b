package domain

// Fixed diagnostics printed by the scripts.
const (
	MsgNaN         = "NaN"
	MsgNotANumber  = "Not a number"
	MsgMissingSize = "Missing size"
	MsgNoResult    = "No result"
	MsgInvalidJSON = "Not a valid JSON"
	MsgNone        = "None"
)

// DefaultFill is the character used to draw shapes when none is given.
const DefaultFill = "X"
