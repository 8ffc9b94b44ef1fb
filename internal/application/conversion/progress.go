package conversion

import "strings"

// milestone maps converter stdout fragments to a discrete progress value.
// The converter has no structured progress channel; this matches the log
// lines it prints and breaks silently if those lines change.
type milestone struct {
	fragments []string
	progress  int
	message   string
}

var milestones = []milestone{
	{fragments: []string{"Parsing"}, progress: 50, message: "Parsing map data"},
	{fragments: []string{"Processing", "node"}, progress: 65, message: "Processing map nodes"},
	{fragments: []string{"Processing", "way"}, progress: 80, message: "Processing map ways"},
	{fragments: []string{"Generating"}, progress: 90, message: "Generating DXF output"},
}

// ClassifyProgress maps the accumulated converter output to the latest
// matching milestone. Later milestones override earlier ones as output
// grows; no match reports ok=false and leaves progress untouched.
func ClassifyProgress(output string) (progress int, message string, ok bool) {
	for _, m := range milestones {
		if containsAll(output, m.fragments) {
			progress = m.progress
			message = m.message
			ok = true
		}
	}
	return progress, message, ok
}

func containsAll(output string, fragments []string) bool {
	for _, fragment := range fragments {
		if !strings.Contains(output, fragment) {
			return false
		}
	}
	return true
}
