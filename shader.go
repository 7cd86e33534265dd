package ggchart

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// Embedded WGSL shader source for the chart primitive pipeline.
//
//go:embed shaders/chart.wgsl
var chartShaderSource string

// compileShaderToSPIRV compiles WGSL source to a SPIR-V uint32 slice.
func compileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// createChartShader creates the chart shader module. WGSL is validated and
// pre-compiled to SPIR-V through naga; if that fails the WGSL source is
// handed to the backend compiler directly.
func createChartShader(device hal.Device) (hal.ShaderModule, error) {
	if spirv, err := compileShaderToSPIRV(chartShaderSource); err == nil {
		m, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
			Label:  "chart_shader",
			Source: hal.ShaderSource{SPIRV: spirv},
		})
		if err == nil {
			return m, nil
		}
		Logger().Warn("ggchart: SPIR-V module rejected, retrying with WGSL", "error", err)
	} else {
		Logger().Warn("ggchart: naga compile failed, passing WGSL to backend", "error", err)
	}

	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "chart_shader",
		Source: hal.ShaderSource{WGSL: chartShaderSource},
	})
}
