package internal

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	OptionTLS       = "tls"
	OptionAccessKey = "access_key"
)

// ServiceOptions configures requests to exchangerate.host. TLS is off by default
// because the free plan does not offer it.
type ServiceOptions struct {
	TLS       bool
	AccessKey string
}

// OptionsPatch is a partial update of ServiceOptions; nil fields are kept.
type OptionsPatch struct {
	TLS       *bool
	AccessKey *string
}

func WithTLS(v bool) OptionsPatch { return OptionsPatch{TLS: &v} }

func WithAccessKey(key string) OptionsPatch { return OptionsPatch{AccessKey: &key} }

func (o ServiceOptions) Merge(p OptionsPatch) ServiceOptions {
	if p.TLS != nil {
		o.TLS = *p.TLS
	}
	if p.AccessKey != nil {
		o.AccessKey = *p.AccessKey
	}
	return o
}

func (o ServiceOptions) Scheme() string {
	if o.TLS {
		return "https"
	}
	return "http"
}

// ParseOptions converts the string keyed form ("tls", "access_key") into a patch.
// Unknown keys are rejected.
func ParseOptions(raw map[string]string) (OptionsPatch, error) {
	var p OptionsPatch
	for k, v := range raw {
		switch strings.TrimSpace(k) {
		case OptionTLS:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return OptionsPatch{}, fmt.Errorf("option %s=%q: %w", OptionTLS, v, err)
			}
			p.TLS = &b
		case OptionAccessKey:
			key := v
			p.AccessKey = &key
		default:
			return OptionsPatch{}, fmt.Errorf("unknown service option %q", k)
		}
	}
	return p, nil
}
