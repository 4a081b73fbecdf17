package game

// Main menu entries, in order.
var mainMenu = []string{
	"Play the silk road game.",
	"Learn about the silk road.",
	"Tips & tricks.",
	"View credits.",
	"Quit.",
}

const (
	menuPlay = iota
	menuAbout
	menuTips
	menuCredits
	menuQuit
)

const marketIntro = "\tBefore you go on your journey, it is important to purchase goods to trade along the way. " +
	"Goods that can be made near your home are cheaper than goods from far away. " +
	"It is a good idea to buy cheap goods because they'll become more valuable as you continue on your way. "

var aboutPages = []string{
	"\tThe Silk Road was a network of Asian trade routes active from the 2nd century BC " +
		"until the mid-15th century AD. The term 'Silk Road' was coined in the 19th century, " +
		"though many historians prefer 'Silk Routes' to reflect its complexity. Some scholars " +
		"criticize the term for focusing too much on empires at either end of Eurasia and " +
		"overlooking contributions from nomads and civilizations like India and Iran.",

	"\tThe name comes from China’s lucrative silk trade, which began with Han dynasty expansion " +
		"into Central Asia around 114 BC. By the 1st century AD, silk was highly desired in Rome, " +
		"Egypt, and Greece. Other eastern goods included tea, dyes, perfumes, and porcelain, while " +
		"western exports included horses, wine, and gold. Innovations like paper and gunpowder spread " +
		"widely, shaping political history.",

	"\tThe Silk Road operated through periods of upheaval, including the Mongol conquests and the Black Death. " +
		"It was decentralized and dangerous, with threats from bandits and harsh terrain. Few traveled the entire " +
		"route, relying instead on chains of middlemen. Beyond goods, the routes enabled exchanges of religion, " +
		"philosophy, and science, while also spreading diseases such as plague.",
}

// Resource is a further-reading link offered after the about pages.
type Resource struct {
	Title string
	URL   string
}

var resources = []Resource{
	{"Smart History: The Silk Roads", "https://smarthistory.org/reframing-art-history/the-silk-roads/"},
	{"Wikipedia: Silk Road", "https://en.wikipedia.org/wiki/Silk_Road"},
	{"Britannica: Silk Road (trade route)", "https://www.britannica.com/topic/Silk-Road-trade-route"},
	{"National Geographic: ENCYCLOPEDIC ENTRY The Silk Road", "https://education.nationalgeographic.org/resource/silk-road/"},
}

var tipsPages = []string{
	"\tBuy what is cheap at home. Goods made near your first stop cost little there " +
		"and fetch more the farther you carry them.\n" +
		"\tEvery market buys and sells a good at the same price, so a trade only pays " +
		"off once you reach a city where that good is dearer.",

	"\tWatch your load. Each character can carry only so many pounds, and heavy goods " +
		"like wine and olive oil fill a pack train quickly. Coins weigh nothing.\n" +
		"\tOne gold coin is worth ten silver. Purchases are paid in silver first; " +
		"when the silver runs out a gold coin is broken and the change returned in silver.",
}

var creditsPages = []string{
	"\tThe Silk Road Game\n" +
		"\tAn educational trading game about the routes that joined China, India, Persia and the Mediterranean.\n" +
		"\tBuilt with Ebitengine. Text set in the Go fonts.",
}
