// Command yydbuild packages the YYDB analyzer source file into a standalone
// windowed executable. Invoking the binary with no arguments runs the full
// build pipeline; subcommands expose environment status and configuration
// utilities.
package main
