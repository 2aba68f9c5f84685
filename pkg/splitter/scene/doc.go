// Package scene runs a host application as a sequence of scenes with
// explicit data flow between them.
//
// Each scene is a function from an input to a result. A single transition
// function looks at the scene that just returned and its result and picks
// the next scene and its input, so all routing lives in one place. The
// splitter demo uses it to step through one scene per display mode.
//
//	r := scene.New()
//	r.Register(SceneCircle, runCircle)
//	r.Register(SceneList, runList)
//	r.OnTransition(func(from scene.ID, result any, h *scene.History) (scene.ID, any) {
//	    switch result.(Outcome) {
//	    case OutcomeNext:
//	        h.Push(from, nil)
//	        return modes.Next(from), nil
//	    case OutcomeBack:
//	        if entry := h.Pop(); entry != nil {
//	            return entry.Scene, entry.Input
//	        }
//	    }
//	    return scene.Exit, nil
//	})
//	err := r.Run(ctx, SceneCircle, nil)
package scene
