// Package pagewatch provides a web page content-change monitor.
// It periodically fetches tracked pages, reduces their HTML to normalized
// text, compares the text against the last stored version, and records and
// notifies when a change of sufficient magnitude is detected.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, difflib/).
package pagewatch
