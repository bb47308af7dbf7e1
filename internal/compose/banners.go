package compose

import "github.com/padhakulabs/padhaku/internal/lang"

// Scripted strings, keyed by language. Every map covers all three tags;
// lookups go through pick() so a missing entry can never surface.

var welcomeBanners = map[lang.Tag]string{
	lang.English:  "Welcome! I am Padhaku, your study assistant. Ask me anything about your studies.",
	lang.Hindi:    "नमस्ते! मैं पढ़ाकू हूँ, आपका अध्ययन सहायक। पढ़ाई से जुड़ा कोई भी सवाल पूछिए।",
	lang.Hinglish: "Namaste! Main Padhaku hoon, aapka study assistant. Padhai se juda koi bhi sawal poochhiye.",
}

var permissionPrompts = map[lang.Tag]string{
	lang.English:  "May I ask you a question?",
	lang.Hindi:    "क्या मैं आपसे एक सवाल पूछ सकता हूँ?",
	lang.Hinglish: "Kya main aapse ek sawal poochh sakta hoon?",
}

var correctBanners = map[lang.Tag]string{
	lang.English:  "✅ Well done! That's the right answer.",
	lang.Hindi:    "✅ बहुत बढ़िया! यह सही जवाब है।",
	lang.Hinglish: "✅ Well done! Sahi jawab.",
}

var incorrectBanners = map[lang.Tag]string{
	lang.English:  "❌ That's not correct. The right answer is: %s",
	lang.Hindi:    "❌ यह सही नहीं है। सही जवाब है: %s",
	lang.Hinglish: "❌ Galat jawab. Sahi jawab hai: %s",
}

var apologies = map[lang.Tag]string{
	lang.English:  "We're having technical trouble right now, please try again later.",
	lang.Hindi:    "अभी तकनीकी समस्या है, कृपया बाद में प्रयास करें।",
	lang.Hinglish: "Abhi technical problem hai, kripya baad mein try karein.",
}

var emptyFallbacks = map[lang.Tag]string{
	lang.English:  "I didn't understand that, please ask again.",
	lang.Hindi:    "मुझे समझ नहीं आया, कृपया फिर से पूछें।",
	lang.Hinglish: "Mujhe samajh nahi aaya, kripya phir se poochhein.",
}

func pick(m map[lang.Tag]string, tag lang.Tag) string {
	if s, ok := m[tag]; ok {
		return s
	}
	return m[lang.Fallback]
}
