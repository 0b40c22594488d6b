/*
Package numeric implements the arithmetic exercises behind the number scripts:
factorial, second-largest selection, integer parsing, square drawing, addition
and peak finding.

Arguments arrive as strings, so the package also owns the loose conversion
between text and float64 (Parse, IsNumber) and the canonical printed
form of a number (Format).
*/
package numeric
