// Package searchdrop provides a debounced search dropdown for a content site
// whose articles carry location metadata. Keystrokes are turned into at most
// one search request per pause in typing and the response is rendered as a
// dropdown of results below the search field.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, bubbletea/).
package searchdrop
