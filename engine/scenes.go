package engine

import "viralreel/types"

func (e *Engine) buildScenes(script []types.ScriptSegment, v vocab) []types.ScenePlan {
	scenes := make([]types.ScenePlan, len(script))
	for i, seg := range script {
		tmpl := e.bank.Segments[i]
		scenes[i] = types.ScenePlan{
			SegmentType:     seg.Label,
			VisualPrompt:    v.fill(pick(tmpl.Visuals, v.category, "visual."+seg.Label)),
			MotionDirection: v.fill(pick(tmpl.Motions, v.category, "motion."+seg.Label)),
			SupportingBroll: v.fill(pick(tmpl.Broll, v.category, "broll."+seg.Label)),
			OverlayText:     v.fill(pick(tmpl.Overlays, v.category, "overlay."+seg.Label)),
		}
	}
	return scenes
}
