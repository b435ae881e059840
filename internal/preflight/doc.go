// Package preflight implements environment readiness checks surfaced by the
// status command: interpreter and pip availability, source file presence, and
// workspace access. The build pipeline does not gate on these; provisioning
// is unconditional by design.
package preflight
