// Package i18n holds the translation seam shared by the form components.
//
// A Translator resolves message keys for a locale. Catalog is the built-in
// implementation backed by YAML message files; the embedded default ships the
// German messages the card form is written in. Missing keys never fail a
// render: they go through a MissingTranslationHandler, which by default falls
// back to the supplied default text or the key itself.
package i18n
