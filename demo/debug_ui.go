package demo

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/vertices/frame"
	"github.com/plus3/vertices/overlay"
	"github.com/plus3/vertices/transform"
)

// TransformWindow shows the live transform parameters, a reset button and the
// per-system update timings.
func TransformWindow(state *transform.State, scheduler *frame.Scheduler) overlay.Item {
	return overlay.Item{
		Name: "Transform",
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(10, 240), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(260, 230), imgui.CondOnce)

			if !imgui.BeginV("Transform", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}

			imgui.Text(fmt.Sprintf("Scale: %.3f", state.Scale))
			imgui.Text(fmt.Sprintf("Rotation: %.1f, %.1f", state.RotationX, state.RotationY))
			imgui.Text(fmt.Sprintf("Orbit: %.1f, %.1f", state.OrbitX, state.OrbitY))
			imgui.Text(fmt.Sprintf("Translation: %.2f, %.2f, %.2f",
				state.Translation[0], state.Translation[1], state.Translation[2]))

			if imgui.Button("Reset") {
				state.Reset()
			}

			if imgui.TreeNodeStr("Systems") {
				for _, sys := range scheduler.Stats().Systems {
					imgui.BulletText(fmt.Sprintf("%s: %s avg", sys.Name, sys.AvgDuration))
				}
				imgui.TreePop()
			}

			imgui.End()
		},
	}
}
