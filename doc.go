// Package cardform wires the member ID-card form helpers: the image preview
// for the photo upload and the valid-until display for the issue date.
//
// Setup binds both behaviours to handles the host application supplies:
//
//	bindings := cardform.Setup(cardform.Form{
//	  ImageInputs: []imagepreview.FileInput{photo},
//	  Preview:     container,
//	  IssuedDate:  issued,
//	  ValidUntil:  display,
//	})
//	defer bindings.Wait()
//
// RegisterRoutes mounts the server-assisted endpoints, the OpenAPI document
// and the browser runtime on a mux.
package cardform
