package main

import (
	"testing"

	"github.com/learngl/examples/platform"
	"github.com/learngl/examples/utils"
	"github.com/stretchr/testify/assert"
)

func TestConfigureWindowSamples(t *testing.T) {
	app := &AntiAliasingMSAA{}

	cases := []struct {
		name    string
		samples int
		want    int
	}{
		{"unset", utils.SamplesUnset, defaultSamples},
		{"disabled", 0, 0},
		{"explicit", 8, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := utils.DefaultConfig()
			cfg.Samples = tc.samples
			window := platform.DefaultConfig("24_anti_aliasing_msaa")

			app.ConfigureWindow(&window, cfg)
			assert.Equal(t, tc.want, window.Samples)
		})
	}
}
