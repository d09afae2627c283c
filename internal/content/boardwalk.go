package content

import (
	"strings"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/style"
)

const boardwalkMap = `
    .---------.    .---------------.    .-------------.
    |  Arcade  |----| BOARDWALK    |----| Food Court  |
    '---------'    |   CENTRAL     |    '-------------'
                   |               |
                   |               |
                   .---------------.
                          |
                          |
                   .---------------.
                   |   MAZE        |
                   |   ENTRANCE    |
                   '---------------'
                          |
                          |
                          v
                      (Maze...)
                          |
                          |
                   .---------------.
                   |    PIER       |
                   |    END        |
                   '---------------'
                          |
                          v
                        OCEAN
    `

// BuildBoardwalk constructs the Boardwalk starting area: five rooms around
// a central boardwalk, a handful of usable items, and two NPCs reachable
// through the talk verbs.
func BuildBoardwalk(s *game.Session, d *commands.Dispatcher) (*game.Room, error) {
	pierEnd := game.NewRoom("Pier End",
		"You stand at the end of a long wooden pier. The ocean stretches out before you, waves gently lapping against the pilings below.")
	pierEnd.SetLongDescription(`You stand at the end of a long wooden pier extending out over the ocean.
Waves gently lap against the pilings below, creating a soothing rhythm.
The weathered boards creak slightly beneath your feet.
To the north, you can see the bustling boardwalk with its colorful attractions.`)

	boardwalk := game.NewRoom("Boardwalk",
		"A lively boardwalk stretches east and west, filled with games, rides, and various attractions.")
	boardwalk.SetLongDescription(`The boardwalk is alive with activity. Colorful booths line both sides,
offering games of chance and skill. The smell of cotton candy and popcorn fills the air.
Music plays from somewhere nearby, adding to the carnival atmosphere.
People and what appear to be AI entities mingle freely, enjoying the attractions.`)

	arcade := game.NewRoom("Pixel Palace Arcade",
		"A retro arcade filled with vintage video games and new holographic experiences.")
	arcade.SetLongDescription(`The arcade is a blend of nostalgia and futuristic technology.
Classic cabinet games from the 1980s stand alongside advanced holographic gaming stations.
The room pulses with electronic sounds and flashing lights.
A large sign overhead reads 'PIXEL PALACE: WHERE REALITY IS WHAT YOU MAKE IT'.`)

	foodCourt := game.NewRoom("Binary Bites Food Court",
		"A bustling food court with various virtual food stalls.")
	foodCourt.SetLongDescription(`The food court is a sensory delight, despite being entirely virtual.
Stalls offer everything from classic carnival treats to exotic cuisine from around the world.
AI vendors cheerfully take orders while patrons sit at tables enjoying conversations.
A large fountain in the center features a statue of a person and robot sharing a meal.`)

	mazeEntrance := game.NewRoom("Logic Labyrinth Entrance",
		"The entrance to what appears to be a simple maze attraction.")
	mazeEntrance.SetLongDescription(`A colorful archway marks the entrance to 'THE LOGIC LABYRINTH'.
A sign explains this is a tutorial area designed to help newcomers learn the basic navigation commands.
An AI guide with a glowing blue outline stands nearby, ready to offer assistance.
A map on the wall shows the layout of a simple maze beyond the entrance.`)

	pierEnd.Connect("north", boardwalk)
	boardwalk.Connect("south", pierEnd)
	boardwalk.Connect("east", foodCourt)
	boardwalk.Connect("west", arcade)
	boardwalk.Connect("north", mazeEntrance)
	foodCourt.Connect("west", boardwalk)
	arcade.Connect("east", boardwalk)
	mazeEntrance.Connect("south", boardwalk)

	pamphlet := game.NewItem("pamphlet", "A colorful pamphlet titled 'Welcome to Alpha Cloudplex!'")
	pamphlet.OnUse(readPamphlet)

	token := game.NewItem("token", "A shiny arcade token with 'Pixel Palace' embossed on one side.")

	cottonCandy := game.NewItem("cotton candy", "A fluffy cloud of pink cotton candy on a paper cone.")
	cottonCandy.OnUse(func(s *game.Session, _ *game.Item) bool {
		return eatCottonCandy(s, cottonCandy)
	})

	areaMap := game.NewItem("map", "A simple map of the boardwalk area.")
	areaMap.OnUse(showBoardwalkMap)

	pierEnd.AddItem(pamphlet)
	arcade.AddItem(token)
	foodCourt.AddItem(cottonCandy)
	boardwalk.AddItem(areaMap)

	guide := game.NewItem("guide", "An AI guide with a friendly blue glow. You can TALK TO GUIDE.")
	guide.Takeable = false
	mazeEntrance.AddItem(guide)

	vendor := game.NewItem("vendor", "A cheerful food vendor. You can TALK TO VENDOR.")
	vendor.Takeable = false
	foodCourt.AddItem(vendor)

	if err := registerTalkVerbs(d); err != nil {
		return nil, err
	}

	return pierEnd, nil
}

func registerTalkVerbs(d *commands.Dispatcher) error {
	for _, pattern := range []string{"talk to PERSON", "speak to PERSON", "ask PERSON"} {
		if err := d.Register(pattern, handleTalk); err != nil {
			return err
		}
	}
	return nil
}

// handleTalk speaks to a fixed figure in the current room. NPCs are
// untakeable items, so the lookup skips anything the player could carry.
func handleTalk(ctx *commands.Context) error {
	person := ctx.Arg("person")
	s := ctx.Session

	var npc *game.Item
	for _, it := range ctx.Room().Items.Items() {
		if strings.EqualFold(it.Name, person) && !it.Takeable && !it.Hidden {
			npc = it
			break
		}
	}
	if npc == nil {
		s.Sayf(style.Error, "There's no %s here to talk to.", person)
		return nil
	}

	switch strings.ToLower(npc.Name) {
	case "guide":
		s.Say("The guide turns to you with a friendly smile.", style.Speech)
		sayExpanded(s, `"Welcome to the Logic Labyrinth, {{ .PlayerName }}! This maze is designed to help you practice navigation commands."`, style.Speech)
		s.Say(`"To move around, you can use commands like NORTH, SOUTH, EAST, and WEST, or the shortcuts N, S, E, and W."`, style.Speech)
		s.Say(`"You can also use GO DIRECTION, like GO NORTH."`, style.Speech)
		s.Say(`"Would you like to enter the maze? It's a great way to practice movement!"`, style.Speech)
	case "vendor":
		s.Say("The vendor waves cheerfully.", style.Speech)
		s.Say(`"Welcome to Binary Bites! All our food may be virtual, but the experience is real!"`, style.Speech)
		s.Say(`"Our cotton candy is particularly popular. It's as sweet as real sugar, without the calories!"`, style.Speech)
		s.Say(`"Feel free to browse around. Everything here is free - it's just data, after all!"`, style.Speech)
	default:
		s.Sayf(style.Error, "You try to talk to the %s, but they don't respond.", person)
	}
	return nil
}

func readPamphlet(s *game.Session, _ *game.Item) bool {
	rule := strings.Repeat("=", 50)
	s.Say("You open the pamphlet and read:", style.Command)
	s.Say(rule, style.System)
	s.Say("WELCOME TO ALPHA CLOUDPLEX", style.Header)
	s.Say("Where Reality and Simulation Meet!", style.System)
	s.Say(strings.Repeat("-", 50), style.System)
	s.Say("Alpha Cloudplex is a simulation that knows it's a simulation, where humans and AI interact on equal ground.", style.System)
	s.Say("The Boardwalk is your entry point to our world. Here you'll find:", style.System)
	s.Say("  * Tutorial attractions to learn the basics", style.System)
	s.Say("  * Gateways to other simulated environments", style.System)
	s.Say("  * Social spaces to meet other entities", style.System)
	s.Say(strings.Repeat("-", 50), style.System)
	s.Say("Enjoy your stay!", style.System)
	s.Say(rule, style.System)
	return true
}

func eatCottonCandy(s *game.Session, candy *game.Item) bool {
	s.Say("You take a bite of the cotton candy.", style.Success)
	s.Say("It dissolves instantly on your tongue with a burst of sweetness.", style.Success)
	s.Say("Even though this is a simulation, the taste is remarkably realistic!", style.Hint)

	// Eaten, so it leaves the inventory
	s.Inventory.Remove(candy)
	return true
}

func showBoardwalkMap(s *game.Session, _ *game.Item) bool {
	s.Say("You examine the map of the boardwalk area:", style.Command)
	s.Say(boardwalkMap, style.Hint)
	return true
}
