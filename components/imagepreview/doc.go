// Package imagepreview renders an inline thumbnail of an image the user picked
// in a file input, before the form is submitted.
//
// The first selected file is read as a data URL and rendered as a single
// <img class="profile-image-preview" alt="Bildvorschau"> fragment that
// replaces the preview container's contents. Reads are asynchronous and are
// not cancelled: when the selection changes mid-read the container shows
// whichever read completed last. Missing files, a missing container and read
// failures are silent no-ops.
//
// Bind wires the behavior to injected file inputs and a preview target; the
// net/http handler accepts a multipart upload and answers with the same
// fragment for server-rendered forms.
package imagepreview
