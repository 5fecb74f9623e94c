package templates

// DefaultVersion identifies the compiled-in bank
const DefaultVersion = "builtin-1"

// Default returns a fresh copy of the compiled-in bank
func Default() *Bank {
	return &Bank{
		Version: DefaultVersion,

		Insights: []string{
			"Short {category} clips that open with a bold claim keep 2x more viewers past the first second.",
			"Face-to-camera {category} content outperforms faceless edits when the creator names the problem out loud.",
			"Viewers save {category} posts that teach one specific move, not a full routine.",
			"Native captions on {category} reels lift completion rates for sound-off scrolling.",
			"Loopable endings make {category} videos replay, which pushes them into more feeds.",
			"Comments asking for a part two are the strongest signal for {category} follow-ups.",
			"Before and after framing makes {category} results feel earned and shareable.",
			"Trending audio under 20 seconds gives {category} creators the widest reach window.",
		},
		InsightSummaries: []string{
			"Winning {category} reels hook in the first second, teach one concrete move, and end on a loop.",
			"Audiences reward {category} creators who promise a result fast and prove it on screen.",
			"The {category} videos that travel are short, captioned, specific, and built to be saved.",
		},
		HookFormulas: []string{
			"Call out the mistake + promise the fix: \"You're doing {category} wrong. Here's the fix.\"",
			"Curiosity gap + time frame: \"This {category} trick takes 10 seconds.\"",
			"Contrarian claim + proof: \"Stop doing {category} like this. Do this instead.\"",
			"Result first, method second: \"How I leveled up my {category} in one week.\"",
		},

		Segments: []Segment{
			{
				Label:      "hook",
				Objective:  "Stop the scroll in the first second with a bold, specific promise.",
				MinSeconds: 2.5,
				MaxSeconds: 3.5,
				Texts: []string{
					"Stop scrolling: this {category} trick changes everything.",
					"Nobody tells you this about {category}.",
					"You're doing {category} wrong, and it's costing you.",
				},
				Narration: []string{
					"Stop scrolling. This {category} trick works.",
					"Nobody talks about this {category} secret.",
					"You're doing {category} wrong. Here's why.",
				},
				VoiceProfiles: []string{
					"Energetic, confident creator voice",
					"Urgent, conspiratorial whisper-to-punch",
				},
				Pacing: "fast, punchy",
				Notes: []string{
					"Hit the first word on frame one; no intro breath.",
					"Stress the category name, then pause a beat.",
				},
				Visuals: []string{
					"Extreme close-up of the creator mid-sentence, {category} prop in frame",
					"Bold text slam over a striking {category} shot",
				},
				Motions: []string{
					"Snap zoom in on the first word",
					"Whip pan into frame",
				},
				Broll: []string{
					"Fast flash of the end result",
					"Split second of a common {category} mistake",
				},
				Overlays: []string{
					"WAIT. {Category} hack",
					"Stop doing this",
				},
				OpenBeats: []Beat{
					{Action: "Hard cut in", Detail: "Open cold on the hook line, no logo, no intro."},
					{Action: "Punch-in zoom", Detail: "120% punch on the first stressed word."},
				},
				AccentBeats: []Beat{
					{Action: "Caption pop", Detail: "Pop the key phrase in bold kinetic text."},
					{Action: "Whoosh SFX", Detail: "Sound effect synced to the overlay slam."},
				},
			},
			{
				Label:      "value",
				Objective:  "Deliver one concrete, repeatable {category} move the viewer can use today.",
				MinSeconds: 5.0,
				MaxSeconds: 7.0,
				Texts: []string{
					"Step 1: start small. Step 2: repeat daily. Step 3: track it for 7 days.",
					"Pick one {category} lever, do it every day, measure the change.",
					"The pros keep {category} simple: clear goal, tiny steps, honest feedback.",
				},
				Narration: []string{
					"Start small with {category}: one habit a day, tracked for a week.",
					"Most people overcomplicate {category}. Pick one lever, repeat it daily, and measure.",
					"The pros keep {category} simple: clear goal, tiny steps, honest feedback.",
				},
				VoiceProfiles: []string{
					"Warm, expert coach",
					"Clear, friendly explainer",
				},
				Pacing: "steady, clear",
				Notes: []string{
					"Count the steps on your fingers to match the captions.",
					"Slow down slightly on the one actionable instruction.",
				},
				Visuals: []string{
					"Step-by-step demonstration of the {category} move on a clean background",
					"Over-the-shoulder shot of the {category} routine in action",
				},
				Motions: []string{
					"Slow push in during each step",
					"Handheld follow with gentle sway",
				},
				Broll: []string{
					"Close-ups of hands performing each step",
					"Screen-recorded checklist filling in",
				},
				Overlays: []string{
					"Step 1 / Step 2 / Step 3",
					"Do this daily",
				},
				OpenBeats: []Beat{
					{Action: "Jump cut", Detail: "Trim every pause between steps."},
					{Action: "Match cut", Detail: "Cut on motion from the hook into the first step."},
				},
				AccentBeats: []Beat{
					{Action: "B-roll insert", Detail: "Cut to a close-up of the step being shown."},
					{Action: "Progress bar", Detail: "Animate a thin bar that fills as steps complete."},
				},
			},
			{
				Label:      "payoff",
				Objective:  "Show the result so the promise from the hook feels earned.",
				MinSeconds: 4.0,
				MaxSeconds: 5.0,
				Texts: []string{
					"7 days later: the difference is obvious.",
					"This is what consistent {category} looks like.",
					"Before vs after. Same person, one small change.",
				},
				Narration: []string{
					"Do this for one week and watch the results stack up.",
					"That's how {category} finally clicks, and it takes minutes.",
					"Seven days later, your {category} looks completely different.",
				},
				VoiceProfiles: []string{
					"Proud, satisfied reveal",
					"Calm, confident closer",
				},
				Pacing: "building, then release",
				Notes: []string{
					"Let the reveal breathe for half a beat before speaking.",
					"Smile through the last line; it reads in the audio.",
				},
				Visuals: []string{
					"Side-by-side before and after of the {category} result",
					"Slow reveal of the finished {category} outcome",
				},
				Motions: []string{
					"Split-screen wipe from before to after",
					"Smooth pull back to reveal the whole result",
				},
				Broll: []string{
					"Reaction shot of a friend seeing the result",
					"Timelapse compressing the week into two seconds",
				},
				Overlays: []string{
					"Day 1 vs Day 7",
					"The result",
				},
				OpenBeats: []Beat{
					{Action: "Speed ramp", Detail: "Ramp from 200% into real time on the reveal."},
					{Action: "Wipe transition", Detail: "Wipe from before to after on the beat drop."},
				},
				AccentBeats: []Beat{
					{Action: "Bass hit SFX", Detail: "Land a bass hit on the strongest frame."},
					{Action: "Freeze frame", Detail: "Hold the best frame for six frames."},
				},
			},
			{
				Label:      "cta",
				Objective:  "Turn the viewer into a follower with one clear next step.",
				MinSeconds: 2.0,
				MaxSeconds: 3.5,
				Texts: []string{
					"Follow for daily {category} tips.",
					"Save this for your next {category} session.",
					"Comment \"part 2\" for the advanced version.",
				},
				Narration: []string{
					"Follow for more {category} tips.",
					"Save this and try it today.",
					"Comment 'part two' for more.",
				},
				VoiceProfiles: []string{
					"Friendly, direct sign-off",
				},
				Pacing: "quick, upbeat",
				Notes: []string{
					"Point at the follow button as you say it.",
					"End mid-gesture so the loop feels seamless.",
				},
				Visuals: []string{
					"Creator pointing toward the follow button",
					"End card with the {category} handle and a save icon",
				},
				Motions: []string{
					"Quick zoom out to medium shot",
					"Static frame with animated arrow",
				},
				Broll: []string{
					"Teaser frame of the next video",
					"Grid of previous {category} posts",
				},
				Overlays: []string{
					"Follow for more",
					"Save + share",
				},
				OpenBeats: []Beat{
					{Action: "Caption pop", Detail: "Pop the CTA text with a bounce animation."},
					{Action: "Zoom out", Detail: "Ease out to a medium shot for the sign-off."},
				},
				AccentBeats: []Beat{
					{Action: "Pop SFX", Detail: "Soft pop under the follow prompt."},
				},
			},
		},
		ClosingBeats: []Beat{
			{Action: "Loop point", Detail: "Cut the last frame so it flows back into the hook."},
			{Action: "Hard out", Detail: "End on the beat so the replay starts instantly."},
		},

		Titles: []string{
			"The {Category} Trick Nobody Talks About",
			"I Tried This {Category} Hack for 7 Days",
			"Stop Doing {Category} Like This",
			"{Category} in 15 Seconds",
			"The Easiest {Category} Upgrade Ever",
			"Why Your {Category} Isn't Working",
			"{Category}: Beginner vs Pro",
		},
		Captions: []string{
			"This one {category} change took me from stuck to consistent. Try it and tell me how it goes. #{tag}",
			"Save this before your next {category} session. You'll thank me later. #{tag}",
			"Nobody taught me this about {category}, so I'm teaching you. Share it with someone who needs it. #{tag}",
			"Small {category} habits, big results. Which step are you starting with? #{tag}",
		},
		FixedHashtags: []string{
			"#fyp",
			"#viral",
			"#reels",
			"#shorts",
			"#trending",
			"#howto",
		},
		KeywordPatterns: []string{
			"{category} tips",
			"{category} for beginners",
			"{category} hacks",
			"how to improve {category}",
			"{category} routine",
			"best {category} advice",
		},
		ThumbnailPrompts: []string{
			"High-contrast vertical thumbnail: creator with a shocked expression beside a bold \"{Category}\" headline, bright yellow text, blurred background",
			"Split before/after thumbnail for {category}, red arrow pointing to the result, 3-word headline in heavy sans serif",
			"Close-up hero shot of the {category} result with a glowing outline and \"DO THIS\" in bold white caps",
		},
		PostTimes: []string{
			"Tue and Thu, 6-9 PM local time (evening scroll peak)",
			"Weekdays 11 AM-1 PM local time (lunch break scroll)",
			"Sat and Sun, 9-11 AM local time (weekend morning browse)",
			"Mon and Wed, 7-9 PM local time (prime-time engagement)",
		},
		CallsToAction: []string{
			"Follow for daily {category} tips and save this for later.",
			"Comment \"MORE\" and I'll post part two on {category}.",
			"Share this with a friend who's into {category}.",
		},
		AutoReplies: []string{
			"Thank you! Part two on {category} is coming soon 🔥",
			"Try it and let me know your results!",
			"Great question, I'll answer it in the next video.",
			"Save it so you don't lose it 🙌",
			"Which step was most useful for you?",
			"Tag someone who needs this {category} tip!",
			"Appreciate you watching, more coming this week!",
		},
	}
}
