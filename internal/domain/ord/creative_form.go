package ord

// CreativeForm is the distribution form of a creative.
type CreativeForm string

const (
	FormBanner                     CreativeForm = "banner"
	FormTextBlock                  CreativeForm = "text_block"
	FormTextGraphicBlock           CreativeForm = "text_graphic_block"
	FormAudio                      CreativeForm = "audio"
	FormVideo                      CreativeForm = "video"
	FormLiveAudio                  CreativeForm = "live_audio"
	FormLiveVideo                  CreativeForm = "live_video"
	FormOther                      CreativeForm = "other" // deprecated by the registry, still accepted
	FormTextVideoBlock             CreativeForm = "text_video_block"
	FormTextGraphicVideoBlock      CreativeForm = "text_graphic_video_block"
	FormTextAudioBlock             CreativeForm = "text_audio_block"
	FormTextGraphicAudioBlock      CreativeForm = "text_graphic_audio_block"
	FormTextAudioVideoBlock        CreativeForm = "text_audio_video_block"
	FormTextGraphicAudioVideoBlock CreativeForm = "text_graphic_audio_video_block"
	FormBannerHTML5                CreativeForm = "banner_html5"
)

// IsValid returns true if the form is one of the defined constants.
func (f CreativeForm) IsValid() bool {
	switch f {
	case FormBanner, FormTextBlock, FormTextGraphicBlock, FormAudio, FormVideo,
		FormLiveAudio, FormLiveVideo, FormOther, FormTextVideoBlock,
		FormTextGraphicVideoBlock, FormTextAudioBlock, FormTextGraphicAudioBlock,
		FormTextAudioVideoBlock, FormTextGraphicAudioVideoBlock, FormBannerHTML5:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (f CreativeForm) String() string {
	return string(f)
}

// CreativeFormValues returns all creative forms in registry order.
func CreativeFormValues() []CreativeForm {
	return []CreativeForm{
		FormBanner,
		FormTextBlock,
		FormTextGraphicBlock,
		FormAudio,
		FormVideo,
		FormLiveAudio,
		FormLiveVideo,
		FormOther,
		FormTextVideoBlock,
		FormTextGraphicVideoBlock,
		FormTextAudioBlock,
		FormTextGraphicAudioBlock,
		FormTextAudioVideoBlock,
		FormTextGraphicAudioVideoBlock,
		FormBannerHTML5,
	}
}

// CreativeFormLabels maps each form to its display label.
func CreativeFormLabels() map[CreativeForm]string {
	return map[CreativeForm]string{
		FormBanner:                     "Баннер",
		FormTextBlock:                  "Текстовый блок",
		FormTextGraphicBlock:           "Текстово-графический блок",
		FormAudio:                      "Аудиозапись",
		FormVideo:                      "Видеоролик",
		FormLiveAudio:                  "Аудиотрансляция в прямом эфире",
		FormLiveVideo:                  "Видеотрансляция в прямом эфире",
		FormOther:                      "Иное (устарело)",
		FormTextVideoBlock:             "Текстовый блок с видео",
		FormTextGraphicVideoBlock:      "Текстово-графический блок с видео",
		FormTextAudioBlock:             "Текстовый блок с аудио",
		FormTextGraphicAudioBlock:      "Текстово-графический блок с аудио",
		FormTextAudioVideoBlock:        "Текстовый блок с аудио и видео",
		FormTextGraphicAudioVideoBlock: "Текстово-графический блок с аудио и видео",
		FormBannerHTML5:                "HTML5-баннер",
	}
}

// ActualCreativeFormLabels returns the display labels without deprecated
// forms.
func ActualCreativeFormLabels() map[CreativeForm]string {
	labels := CreativeFormLabels()
	delete(labels, FormOther)
	return labels
}
