package generator

var dataDriven = []string{
	"GM dude 👋\n\n{project} is once again the focus of conversation in crypto\n\n" +
		"With ${funding}M in funding, they are no longer just an experiment but a serious candidate in their category\n\n" +
		"Why is this interesting? 👇\n\n" +
		"• TVL hit ${tvl}M (+{growth}% MoM)\n• User base expanding: {users}K active users\n• Strong fundamentals vs market sentiment gap\n\n" +
		"do you see {project} winning the next cycle?",
	"GM anon ☕\n\n{project} numbers are telling a story\n\n" +
		"With {growth}% growth and ${tvl}M TVL, they're moving fast\n\n" +
		"Why this matters 👇\n\n" +
		"• Growth rate: {growth}% (top tier in category)\n• Capital backing: ${funding}M from top VCs\n• User traction: {users}K active wallets\n\n" +
		"The data suggests an accumulation phase. Are we early?",
	"{project} update, numbers don't lie:\n\n" +
		"• ${tvl}M TVL (+{growth}% growth)\n• {users}K users (fastest growing in category)\n• Backed by ${funding}M funding\n\n" +
		"Compare this to competitors trading at 3-5x higher valuations.\n\n" +
		"Are we early or am I missing something?",
	"Quick {project} breakdown 📊\n\nFundamentals are strong but the market hasn't caught up yet\n\n" +
		"What I'm seeing 👇\n\n" +
		"• ${tvl}M TVL with {growth}% organic growth\n• {users}K users onboarded (no token incentives yet)\n• ${funding}M raised from tier-1 backers\n\n" +
		"Risk/reward looking asymmetric here. Thoughts?",
	"GM fam 🌅\n\n{project} is quietly building while everyone's distracted\n\n" +
		"The numbers 👇\n\n" +
		"• {growth}% growth (30-day)\n• ${tvl}M TVL milestone hit\n• {users}K active users and growing\n\n" +
		"Fundamentals > hype. Do you see the potential here?",
	"Interesting data: {project} TVL ${tvl}M (+{growth}%), user growth {users}K. Still undervalued next to competitors. Accumulation zone?",
}

var competitive = []string{
	"Hot take on {project} 🔥\n\n" +
		"Tech-wise: {growth}% faster than competitors\nEconomics: lower fees, higher throughput\nChallenge: awareness & community size\n\n" +
		"In a market that values narratives over tech, can {project} bridge this gap?\n\nThoughts? 👇",
	"GM anon ☕\n\n{project} vs the competition, let's break it down\n\n" +
		"What they're winning at 👇\n\n" +
		"• Performance: {growth}% faster processing\n• Economics: ${tvl}M TVL with better unit economics\n• Execution: shipped {users}% more features than roadmap\n\n" +
		"What they're losing at:\n• Marketing & awareness\n• Community size\n\n" +
		"Can fundamentals win over narratives? History says...",
	"Comparing {project} to competitors ⚖️\n\n" +
		"The good 👇\n• {growth}% faster than the market leader\n• ${tvl}M TVL (growing organically)\n• Lower fees + better UX\n\n" +
		"The challenge:\n• Awareness gap vs competitors\n• Smaller community (for now)\n\n" +
		"Bet on tech or bet on hype? What's your play?",
}

var thesis = []string{
	"Contrarian take on {project} 🧠\n\n" +
		"Market is sleeping on this one. While everyone chases hype, {project} quietly:\n\n" +
		"• Shipped {growth}% more features than roadmap\n• Grew TVL to ${tvl}M organically (no incentives)\n• Executed flawlessly\n\n" +
		"Risk/reward here looks asymmetric. What am I missing?",
	"GM dude 👋\n\n{project} is at a turning point\n\n" +
		"Why I'm watching closely 👇\n\n" +
		"• Growth trajectory: {growth}% (sustainable pace)\n• TVL milestone: ${tvl}M (next target: 2x from here)\n• Catalysts lined up: mainnet launch + partnerships\n\n" +
		"If they execute, we're looking at 5-10x potential.\n\nBullish or cautious?",
	"Bold prediction on {project} 🎯\n\n" +
		"They will be top 3 in their category within 6 months\n\n" +
		"Why? 👇\n\n" +
		"• Tech: {growth}% superior performance vs competitors\n• Team: proven track record\n• Timing: market conditions aligning\n• Execution: ahead of roadmap consistently\n\n" +
		"Am I too bullish or are we genuinely early?",
	"{project} thesis thread 🧵\n\nThe setup here is interesting\n\n" +
		"Bullish signals 👇\n• {growth}% growth maintained for 90 days\n• ${tvl}M TVL (organic, no mercenary capital)\n• ${funding}M backing from smart money\n• Builder community growing fast\n\n" +
		"Bearish risk: market timing, competition\n\n" +
		"Net: risk/reward skewed to the upside. Thoughts?",
}

var customWithRequest = []string{
	"what is {project}'s pitch to founders and builders?\n\n" +
		"{growth}% performance improvement and sub-second finality combined with being EVM compatible.\n\n" +
		"this means {project} can call itself one of the fastest chains.\n\n" +
		"Key benefits:\n• ${tvl}M TVL with organic growth\n• {users}K active users and growing\n• Accelerator program for builders going from zero to one\n• Integration within the ecosystem\n\n" +
		"another key benefit is their community program focused on securing attention. if new launches leverage it well, they can bootstrap their own mindshare.",
	"After much reflection on {project}'s journey\n\n" +
		"It's been incredible watching the growth: {growth}% expansion, ${tvl}M TVL milestone and {users}K users onboarded.\n\n" +
		"The space has evolved beautifully, yet chaotically. Fundamentals like these make me believe we're still early in this cycle.\n\n" +
		"What's your take on {project}'s trajectory?",
	"I recently realised that projects like {project} that survive the bear market always find momentum in the bull run.\n\n" +
		"They have reached:\n• {growth}% organic growth\n• ${tvl}M TVL without incentive farming\n• {users}K loyal active users\n\n" +
		"Learn from this.\n\n" +
		"If a project survives long enough on strong fundamentals, it finds its own success.\n\nAgree?",
	"{project}: {request}\n\nCurrent metrics: {growth}% growth, ${tvl}M TVL, {users}K users\n\nThoughts?",
	"Re: {request}\n\n{project} showing strong signals:\n• {growth}% up (30d)\n• {users}K active users\n• ${tvl}M TVL milestone\n\nWhat do you all think?",
}

var customDefault = []string{
	"what is {project} bringing to the table?\n\n" +
		"{growth}% improvement over competitors with sub-second finality.\n\n" +
		"Key metrics:\n• ${tvl}M TVL (organic growth)\n• {users}K active users\n• Strong builder ecosystem\n\n" +
		"this is interesting because they're solving real problems while others focus on hype.",
	"Watching {project} develop has been fascinating\n\n" +
		"The fundamentals keep improving:\n• {growth}% growth rate\n• ${tvl}M TVL\n• {users}K users onboarded\n\n" +
		"Market sentiment is still mixed, but I think we're early here. What's your take? 👇",
	"Interesting to see {project} survive and grow\n\n" +
		"Their metrics are solid:\n• {growth}% organic growth\n• ${tvl}M TVL without hype\n• {users}K active users\n\n" +
		"Projects focused on fundamentals usually win long term. Agree?",
}
