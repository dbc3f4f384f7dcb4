package domain

import (
	"context"
	"net/url"
	"strings"
)

// SiteConfig describes the public identity of the site
type SiteConfig struct {
	Name       string
	BaseURL    string
	OwnDomains []string
}

func (c *SiteConfig) Valid(ctx context.Context) map[string]string {
	problems := make(map[string]string, 3)

	if strings.TrimSpace(c.Name) == "" {
		problems["name"] = "name cannot be empty"
	}

	u, err := url.Parse(c.BaseURL)
	switch {
	case c.BaseURL == "":
		problems["baseUrl"] = "base URL cannot be empty"
	case err != nil:
		problems["baseUrl"] = err.Error()
	case u.Scheme != "http" && u.Scheme != "https":
		problems["baseUrl"] = "base URL must use http or https"
	case u.Host == "":
		problems["baseUrl"] = "base URL must include a host"
	}

	if len(c.OwnDomains) == 0 {
		problems["ownDomains"] = "own domains cannot be empty"
	}
	for _, d := range c.OwnDomains {
		if strings.Contains(d, "/") || strings.Contains(d, ":") {
			problems["ownDomains"] = "own domains must be bare hostnames, got " + d
			break
		}
	}

	return problems
}

// Host returns the hostname part of BaseURL
func (c *SiteConfig) Host() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// ReferrerDomains lists the hosts whose referrers count as direct traffic:
// OwnDomains plus the BaseURL host when it is not already listed.
func (c *SiteConfig) ReferrerDomains() []string {
	domains := make([]string, 0, len(c.OwnDomains)+1)
	domains = append(domains, c.OwnDomains...)

	host := c.Host()
	if host == "" {
		return domains
	}
	for _, d := range domains {
		if strings.EqualFold(d, host) {
			return domains
		}
	}
	return append(domains, host)
}
