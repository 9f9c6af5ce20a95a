// Package validity computes and displays the "valid until" date of a member ID
// card from its issue date.
//
// A card issued on D is valid until D plus a number of calendar years (five by
// default, one for external staff and interns under DefaultPolicy). Year
// arithmetic follows time.AddDate, so a 29 February issue date rolls forward
// to 1 March in non-leap target years. The result renders as
// "Gültig bis: 15.3.2029" in the default German locale.
//
// Bind wires the computation to an injected date input and text target; the
// net/http handler exposes the same computation for server-rendered forms.
package validity
