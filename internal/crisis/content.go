package crisis

// Support-now content: shown without any screening, and alongside the crisis
// message when the gate trips.

const SupportNowHeading = "You’re not alone. Here’s something you can do right now."

const SupportNowCalming = "It’s okay to pause. You don’t have to fix anything in the next few minutes. " +
	"Try the breathing or grounding below. If things feel too heavy, 988 is there 24/7—call or text."

const Breathing60Sec = "**60-second breathing**\n\n" +
	"Breathe in for 4 counts, hold for 7, breathe out for 8. Repeat 3–4 times. " +
	"This can help slow your nervous system and bring you into the present."

const GroundingScript = `
Find a comfortable place. You can do this in under a minute.

**5 – See**
Name 5 things you can see (e.g. a window, your hands, the floor).

**4 – Touch**
Name 4 things you can feel (e.g. your feet on the ground, the chair, your breath).

**3 – Hear**
Name 3 things you can hear (e.g. traffic, a fan, your own breathing).

**2 – Smell**
Name 2 things you can smell (or 2 breaths if nothing stands out).

**1 – One thing you’re okay about right now**
(e.g. “I’m safe in this room,” “I got through the last hour.”)

You’re here. If you need to, repeat the 5-4-3-2-1 or call 988.
`

const WhenToSeekHelp = `
- Your mood or worry is getting in the way of work, relationships, or daily life
- You’ve been feeling low or anxious most days for 2+ weeks
- You have thoughts of hurting yourself or others
- You want support even if things don’t feel “severe”

This tool does not replace a doctor or therapist. A professional can help you understand what you’re feeling and suggest next steps.
`

var talkDrafts = []string{
	"Hey, I’ve been having a tough week. Can we talk for 10 minutes?",
	"I’ve been feeling off lately and could use a chat. Free sometime?",
	"No need to fix anything—I just need to vent for a bit. Are you around?",
}

// TalkDraft returns a copyable reach-out message, optionally flavored for a
// work or family audience.
func TalkDraft(flavor string) string {
	switch flavor {
	case "work":
		return "I’ve been under a lot of pressure lately and could use someone to talk to. Do you have a few minutes?"
	case "family":
		return "I’ve been struggling a bit and would love to talk. Can we find a time?"
	}
	return talkDrafts[0]
}
