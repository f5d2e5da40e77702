package render

import (
	"time"

	"github.com/pkg/browser"
)

const (
	// maxOpenSources bounds how many citation URLs one action may open.
	maxOpenSources = 4
	// openStagger spaces the launches out so the window manager (or, for a
	// browser already running, its popup heuristics) keeps up.
	openStagger = 150 * time.Millisecond
)

// OpenSources launches up to the first four source URLs in the user's
// browser, 150ms apart. It returns the number of URLs attempted; individual
// launch failures are counted but do not stop the remaining launches.
func OpenSources(urls []string) int {
	return openSources(urls, browser.OpenURL, time.Sleep)
}

// openSources is the testable core: open and sleep are injected.
func openSources(urls []string, open func(string) error, sleep func(time.Duration)) int {
	if len(urls) > maxOpenSources {
		urls = urls[:maxOpenSources]
	}
	attempted := 0
	for i, u := range urls {
		if u == "" {
			continue
		}
		if i > 0 {
			sleep(openStagger)
		}
		_ = open(u)
		attempted++
	}
	return attempted
}
