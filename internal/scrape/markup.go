// Package scrape extracts search results and mirror status from the HTML
// served by the index and the mirror directory.
//
// Every assumption about the pages' markup lives in this file, so a change
// in either site only touches the selectors below.
package scrape

const (
	// Search results page.
	resultNameSelector   = "div.detName"
	resultTitleSelector  = "a.detLink"
	resultCellSelector   = "td"
	resultMagnetSelector = `a[href^="magnet:"]`
	resultAnchorSelector = "a[href]"
	resultDescSelector   = "font.detDesc"

	// Mirror directory page.
	statusScriptSelector = "script"
	statusDateMarker     = "statusDate').innerHTML='"
	statusDateTerminator = "';"
	statusTableSelector  = "table#searchResult"
	statusRowSelector    = "tr"
	statusNameSelector   = "a.t1"
	statusSpeedSelector  = "td.speed"
	statusNotAvailable   = "N/A"
)
