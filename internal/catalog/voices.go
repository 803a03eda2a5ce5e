package catalog

// Voice is one narration voice offered by the speech backend.
type Voice struct {
	VoiceID     string `json:"voice_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Voices is the static fallback catalog, served when the speech backend's
// voice listing is unavailable.
var Voices = []Voice{
	{VoiceID: "21m00Tcm4TlvDq8ikWAM", Name: "Rachel", Category: "Female", Description: "Calm, young adult female voice"},
	{VoiceID: "AZnzlk1XvdvUeBnXmlld", Name: "Domi", Category: "Female", Description: "Strong, confident female voice"},
	{VoiceID: "EXAVITQu4vr4xnSDxMaL", Name: "Bella", Category: "Female", Description: "Soft, gentle female voice"},
	{VoiceID: "ErXwobaYiN019PkySvjV", Name: "Antoni", Category: "Male", Description: "Well-rounded, young adult male voice"},
	{VoiceID: "VR6AewLTigWG4xSOukaG", Name: "Arnold", Category: "Male", Description: "Crisp, mature male voice"},
	{VoiceID: "pNInz6obpgDQGcFmaJgB", Name: "Adam", Category: "Male", Description: "Deep, authoritative male voice"},
	{VoiceID: "yoZ06aMxZJJ28mfd3POQ", Name: "Sam", Category: "Male", Description: "Casual, friendly male voice"},
}

// VoiceByID looks up a voice in the static catalog.
func VoiceByID(id string) (Voice, bool) {
	for _, v := range Voices {
		if v.VoiceID == id {
			return v, true
		}
	}
	return Voice{}, false
}
