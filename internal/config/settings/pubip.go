package settings

import (
	"fmt"
	"net/url"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"
)

type PubIP struct {
	HTTPIPv4URLs []string
	HTTPIPv6URLs []string
	// DNSEnabled adds a DNS echo fallback used when all the HTTP
	// echo services fail.
	DNSEnabled   *bool
	FetchTimeout time.Duration
}

func (p *PubIP) setDefaults() {
	p.HTTPIPv4URLs = gosettings.DefaultSlice(p.HTTPIPv4URLs, []string{
		"https://api.ipify.org",
		"https://ipv4.icanhazip.com",
		"https://v4.ident.me",
	})
	p.HTTPIPv6URLs = gosettings.DefaultSlice(p.HTTPIPv6URLs, []string{
		"https://api6.ipify.org",
		"https://ipv6.icanhazip.com",
		"https://v6.ident.me",
	})
	p.DNSEnabled = gosettings.DefaultPointer(p.DNSEnabled, true)
	const defaultFetchTimeout = 5 * time.Second
	p.FetchTimeout = gosettings.DefaultNumber(p.FetchTimeout, defaultFetchTimeout)
}

func (p PubIP) Validate() (err error) {
	for _, urlString := range append(p.HTTPIPv4URLs, p.HTTPIPv6URLs...) {
		_, err = url.Parse(urlString)
		if err != nil {
			return fmt.Errorf("HTTP echo service URL: %w", err)
		}
	}
	return nil
}

func (p PubIP) String() string {
	return p.toLinesNode().String()
}

func (p PubIP) toLinesNode() *gotree.Node {
	node := gotree.New("Public IP discovery")

	childNode := node.Appendf("HTTP IPv4 echo services")
	for _, urlString := range p.HTTPIPv4URLs {
		childNode.Appendf(urlString)
	}

	childNode = node.Appendf("HTTP IPv6 echo services")
	for _, urlString := range p.HTTPIPv6URLs {
		childNode.Appendf(urlString)
	}

	node.Appendf("DNS fallback: %s", gosettings.BoolToYesNo(p.DNSEnabled))
	node.Appendf("Fetch timeout: %s", p.FetchTimeout)
	return node
}
