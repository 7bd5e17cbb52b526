package go_nvp

import (
	"github.com/stremovskyy/go-nvp/log"
	"github.com/stremovskyy/go-nvp/nvp"
)

// RunOption controls behavior of a single SDK call.
type RunOption func(*runOptions)

// DryRunHandler receives information about a skipped request.
//
// payload is the encoded NVP body with credentials and card data masked.
type DryRunHandler func(method string, url string, payload string)

type runOptions struct {
	dryRun       bool
	dryRunHandle DryRunHandler
}

var dryRunLogger = log.NewDefault()

// DryRun skips the underlying HTTP call.
//
// Optional handler lets you inspect the request payload.
func DryRun(handler ...DryRunHandler) RunOption {
	return func(o *runOptions) {
		o.dryRun = true
		if len(handler) > 0 && handler[0] != nil {
			o.dryRunHandle = handler[0]
			return
		}
		o.dryRunHandle = defaultDryRunHandler
	}
}

func collectRunOptions(opts []RunOption) *runOptions {
	if len(opts) == 0 {
		return nil
	}

	r := &runOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (o *runOptions) isDryRun() bool {
	return o != nil && o.dryRun
}

func (o *runOptions) handleDryRun(method string, url string, payload string) {
	if o == nil || !o.dryRun || o.dryRunHandle == nil {
		return
	}
	o.dryRunHandle(method, url, payload)
}

// shouldDryRun redacts body before any handler sees it.
func shouldDryRun(runOpts []RunOption, method string, url string, body string) bool {
	opts := collectRunOptions(runOpts)
	if !opts.isDryRun() {
		return false
	}
	opts.handleDryRun(method, url, nvp.Redact(body))
	return true
}

func defaultDryRunHandler(method string, url string, payload string) {
	dryRunLogger.Infof("Dry run: skipping request %s %s", method, url)
	if payload == "" {
		dryRunLogger.Infof("Dry run payload: <empty>")
		return
	}
	dryRunLogger.Infof("Dry run payload:\n%s", formatPayload(payload))
}

// formatPayload prints one decoded pair per line.
func formatPayload(body string) string {
	var b []byte
	nvp.ParseValues(body).Range(func(key, value string) bool {
		b = append(b, key...)
		b = append(b, '=')
		b = append(b, value...)
		b = append(b, '\n')
		return true
	})
	return string(b)
}
