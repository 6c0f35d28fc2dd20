package opener

import "github.com/pkg/browser"

// Opener hands a URL to the host environment for display
type Opener interface {
	Open(url string) error
}

// Browser opens URLs in the default web browser
type Browser struct{}

func (Browser) Open(url string) error {
	return browser.OpenURL(url)
}
