// Package i18n provides translated user-facing strings for aion.
//
// Locales are YAML documents with a meta section and nested string tables:
//
//	meta:
//	  code: en
//	  native: English
//	  direction: ltr
//	status:
//	  model_empty: Model cannot be empty
//
// English and Arabic are compiled into the binary. Additional or overriding
// locale files are read from the directories returned by SearchPaths.
//
// A Manager is constructed explicitly and passed to the components that need
// it; there is no global instance.
//
//	tr, err := i18n.New(i18n.SearchPaths()...)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(tr.T("ar", "status.model_selected"))
package i18n
