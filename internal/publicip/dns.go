package publicip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/miekg/dns"
)

type ipFamily uint8

const (
	familyIPv4 ipFamily = iota
	familyIPv6
)

// dnsProvider is a nameserver echoing the client's public address
// in response to a well known question.
type dnsProvider struct {
	name        string
	nameserver4 string // host:port reached over IPv4
	nameserver6 string // host:port reached over IPv6
	fqdn        string
	qType       uint16
	qClass      uint16
}

func dnsProviders() []dnsProvider {
	return []dnsProvider{
		{
			name:        "opendns",
			nameserver4: "208.67.222.222:53",
			nameserver6: "[2620:119:35::35]:53",
			fqdn:        "myip.opendns.com.",
			qType:       dns.TypeA, // switched to AAAA for IPv6
			qClass:      dns.ClassINET,
		},
		{
			name:        "cloudflare",
			nameserver4: "1.1.1.1:53",
			nameserver6: "[2606:4700:4700::1111]:53",
			fqdn:        "whoami.cloudflare.",
			qType:       dns.TypeTXT,
			qClass:      dns.ClassCHAOS,
		},
	}
}

type dnsFetcher struct {
	client    *dns.Client
	providers []dnsProvider
}

func newDNSFetcher(timeout time.Duration) *dnsFetcher {
	return &dnsFetcher{
		client:    &dns.Client{Timeout: timeout},
		providers: dnsProviders(),
	}
}

var ErrAnswerNotFound = errors.New("no address found in DNS answer")

func (d *dnsFetcher) fetch(ctx context.Context, family ipFamily) (
	ip string, err error) {
	for _, provider := range d.providers {
		ip, err = d.fetchProvider(ctx, provider, family)
		if err == nil {
			return ip, nil
		}
	}
	return "", err
}

func (d *dnsFetcher) fetchProvider(ctx context.Context,
	provider dnsProvider, family ipFamily) (ip string, err error) {
	nameserver := provider.nameserver4
	qType := provider.qType
	if family == familyIPv6 {
		nameserver = provider.nameserver6
		if qType == dns.TypeA {
			qType = dns.TypeAAAA
		}
	}

	message := new(dns.Msg)
	message.SetQuestion(provider.fqdn, qType)
	message.Question[0].Qclass = provider.qClass

	reply, _, err := d.client.ExchangeContext(ctx, message, nameserver)
	if err != nil {
		return "", fmt.Errorf("%s: %w", provider.name, err)
	}

	for _, answer := range reply.Answer {
		switch rr := answer.(type) {
		case *dns.A:
			return rr.A.String(), nil
		case *dns.AAAA:
			return rr.AAAA.String(), nil
		case *dns.TXT:
			if len(rr.Txt) > 0 {
				return rr.Txt[0], nil
			}
		}
	}
	return "", fmt.Errorf("%s: %w", provider.name, ErrAnswerNotFound)
}
