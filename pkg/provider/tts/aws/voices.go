package aws

import "github.com/MrWong99/atisvoice/pkg/provider/tts/voice"

// Amazon Polly English voices.
const (
	// en-AU
	Nicole  VoiceKind = "Nicole"
	Olivia  VoiceKind = "Olivia"
	Russell VoiceKind = "Russell"

	// en-GB
	Amy    VoiceKind = "Amy"
	Arthur VoiceKind = "Arthur"
	Brian  VoiceKind = "Brian"
	Emma   VoiceKind = "Emma"

	// en-GB-WLS
	Geraint VoiceKind = "Geraint"

	// en-IN
	Aditi   VoiceKind = "Aditi"
	Raveena VoiceKind = "Raveena"

	// en-NZ
	Aria VoiceKind = "Aria"

	// en-US
	Ivy      VoiceKind = "Ivy"
	Joanna   VoiceKind = "Joanna"
	Joey     VoiceKind = "Joey"
	Justin   VoiceKind = "Justin"
	Kendra   VoiceKind = "Kendra"
	Kevin    VoiceKind = "Kevin"
	Kimberly VoiceKind = "Kimberly"
	Matthew  VoiceKind = "Matthew"
	Salli    VoiceKind = "Salli"

	// en-ZA
	Ayanda VoiceKind = "Ayanda"
)

var languageCodes = map[VoiceKind]string{
	Nicole:   "en-AU",
	Olivia:   "en-AU",
	Russell:  "en-AU",
	Amy:      "en-GB",
	Arthur:   "en-GB",
	Brian:    "en-GB",
	Emma:     "en-GB",
	Geraint:  "en-GB-WLS",
	Aditi:    "en-IN",
	Raveena:  "en-IN",
	Aria:     "en-NZ",
	Ivy:      "en-US",
	Joanna:   "en-US",
	Joey:     "en-US",
	Justin:   "en-US",
	Kendra:   "en-US",
	Kevin:    "en-US",
	Kimberly: "en-US",
	Matthew:  "en-US",
	Salli:    "en-US",
	Ayanda:   "en-ZA",
}

var catalog = voice.NewCatalog(providerName,
	Nicole, Olivia, Russell,
	Amy, Arthur, Brian, Emma,
	Geraint,
	Aditi, Raveena,
	Aria,
	Ivy, Joanna, Joey, Justin, Kendra, Kevin, Kimberly, Matthew, Salli,
	Ayanda,
)
