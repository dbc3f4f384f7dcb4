package domain

import (
	"net/url"
	"strings"
)

const SourceDirect = "direct"

var DefaultOwnDomains = []string{"blog.victorbona.dev", "victorbona.dev"}

var searchEngineDomains = map[string]string{
	"google.com":        "google",
	"www.google.com":    "google",
	"google.co.uk":      "google",
	"google.ca":         "google",
	"google.de":         "google",
	"google.fr":         "google",
	"google.com.au":     "google",
	"google.co.jp":      "google",
	"google.com.br":     "google",
	"bing.com":          "bing",
	"www.bing.com":      "bing",
	"m.bing.com":        "bing",
	"duckduckgo.com":    "duckduckgo",
	"search.yahoo.com":  "yahoo",
	"yahoo.com":         "yahoo",
	"baidu.com":         "baidu",
	"www.baidu.com":     "baidu",
	"m.baidu.com":       "baidu",
	"yandex.com":        "yandex",
	"yandex.ru":         "yandex",
	"ecosia.org":        "ecosia",
	"www.ecosia.org":    "ecosia",
	"search.brave.com":  "brave",
	"startpage.com":     "startpage",
	"www.startpage.com": "startpage",
}

var socialDomains = map[string]string{
	"twitter.com":          "twitter",
	"www.twitter.com":      "twitter",
	"mobile.twitter.com":   "twitter",
	"x.com":                "twitter",
	"t.co":                 "twitter",
	"facebook.com":         "facebook",
	"www.facebook.com":     "facebook",
	"m.facebook.com":       "facebook",
	"l.facebook.com":       "facebook",
	"lm.facebook.com":      "facebook",
	"linkedin.com":         "linkedin",
	"www.linkedin.com":     "linkedin",
	"lnkd.in":              "linkedin",
	"reddit.com":           "reddit",
	"www.reddit.com":       "reddit",
	"old.reddit.com":       "reddit",
	"instagram.com":        "instagram",
	"www.instagram.com":    "instagram",
	"l.instagram.com":      "instagram",
	"youtube.com":          "youtube",
	"www.youtube.com":      "youtube",
	"m.youtube.com":        "youtube",
	"youtu.be":             "youtube",
	"pinterest.com":        "pinterest",
	"www.pinterest.com":    "pinterest",
	"tiktok.com":           "tiktok",
	"www.tiktok.com":       "tiktok",
	"news.ycombinator.com": "hackernews",
	"mastodon.social":      "mastodon",
	"threads.net":          "threads",
	"www.threads.net":      "threads",
}

// DetectSource maps a Referer header value to a traffic source label.
// Self-referrals and anything that does not parse as an absolute URL count as direct.
func DetectSource(referrer string, ownDomains []string) string {
	if referrer == "" {
		return SourceDirect
	}

	u, err := url.Parse(referrer)
	if err != nil {
		return SourceDirect
	}
	hostname := strings.ToLower(u.Hostname())
	if u.Scheme == "" || hostname == "" {
		return SourceDirect
	}

	for _, domain := range ownDomains {
		domain = strings.ToLower(domain)
		if hostname == domain || strings.HasSuffix(hostname, "."+domain) {
			return SourceDirect
		}
	}

	if source, ok := searchEngineDomains[hostname]; ok {
		return source
	}
	if source, ok := socialDomains[hostname]; ok {
		return source
	}

	return hostname
}
