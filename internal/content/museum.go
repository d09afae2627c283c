package content

import (
	"strings"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/style"
)

// Flags used by the museum puzzles.
const (
	flagSampleCollectionUsed = "sample_collection_used"
	flagCaseUnlocked         = "case_unlocked"
)

const museumMap = `
    .-----------------.    .-----------------.
    |                 |    |                 |
    | MOVEMENT ROOM   |    |  INVENTORY ROOM |
    |                 |    |                 |
    '---------^-------'    '--------^--------'
              |                     |
              |                     |
    .---------+---------------------+---------.
    |                                         |
    |             ENTRANCE HALL               |
    |                                         |
    .---------+---------------------+---------.
              |                     |
              |                     |
    .---------v-------'    '--------v--------'
    |                 |    |                 |
    |   ITEMS ROOM    |    | CREATION ROOM   |
    |                 |    |                 |
    '-----------------'    '-----------------'
    `

// BuildMuseum constructs the Interactive Learning Museum: an entrance hall
// surrounded by four exhibit rooms, each teaching one mechanic through
// usable items. The key-and-case puzzle in the Chamber of Interactions
// exercises targeted item use.
func BuildMuseum(s *game.Session, d *commands.Dispatcher) (*game.Room, error) {
	entrance := game.NewRoom("Museum Entrance Hall",
		"A grand entrance hall with marble floors and a high ceiling.")
	entrance.SetLongDescription(`You stand in the grand entrance hall of the Interactive Learning Museum.
Marble floors gleam beneath your feet, and informational plaques line the walls.
A large sign welcomes you to the museum and explains its purpose.
Doorways lead in several directions to different exhibit halls.`)

	movementRoom := game.NewRoom("Gallery of Movement",
		"A room dedicated to teaching navigation and movement.")
	movementRoom.SetLongDescription(`This gallery is designed to teach navigation through text adventures.
Large arrow symbols adorn the floor, pointing in various directions.
The walls are decorated with maps and diagrams showing various game worlds.
Interactive displays demonstrate different ways to move between rooms.`)

	inventoryRoom := game.NewRoom("Hall of Inventory",
		"A room filled with display cases showing various items.")
	inventoryRoom.SetLongDescription(`The Hall of Inventory showcases the principles of item management.
Glass display cases contain a variety of intriguing objects, each with a description.
Wall panels explain how to pick up, drop, and examine items in your adventures.
You notice several interactive demonstrations around the room.`)

	itemsRoom := game.NewRoom("Chamber of Interactions",
		"A workshop-like room with various interactive displays.")
	itemsRoom.SetLongDescription(`The Chamber of Interactions demonstrates how objects can be used in game worlds.
Mechanical displays show items being combined and used on various targets.
The room has a hands-on feel, with several stations where you can try things yourself.
A section is dedicated to puzzle mechanics commonly found in text adventures.`)

	creationRoom := game.NewRoom("Workshop of Creation",
		"A bright room set up like a classroom or workshop.")
	creationRoom.SetLongDescription(`The Workshop of Creation is designed to teach you how to build your own adventures.
Workstations with code examples and diagrams line the walls.
The center of the room has a large interactive table with a glowing 3D model of a game world.
This is where visitors learn to create their own rooms, items, and puzzles.`)

	entrance.Connect("north", movementRoom)
	entrance.Connect("east", inventoryRoom)
	entrance.Connect("west", itemsRoom)
	entrance.Connect("south", creationRoom)
	movementRoom.Connect("south", entrance)
	inventoryRoom.Connect("west", entrance)
	itemsRoom.Connect("east", entrance)
	creationRoom.Connect("north", entrance)

	// Entrance hall
	welcomeSign := game.NewItem("sign", "A large welcome sign with information about the museum.")
	welcomeSign.Takeable = false
	welcomeSign.OnUse(readWelcomeSign)

	museumMapItem := game.NewItem("map", "A handy map of the museum's exhibits.")
	museumMapItem.OnUse(showMuseumMap)

	entrance.AddItem(welcomeSign)
	entrance.AddItem(museumMapItem)

	// Gallery of Movement
	movementGuide := game.NewItem("guide", "An interactive guide to movement commands.")
	movementGuide.Takeable = false
	movementGuide.OnUse(readMovementGuide)

	compass := game.NewItem("compass", "A golden compass that always points to the museum entrance.")
	compass.OnUse(useCompass)

	movementRoom.AddItem(movementGuide)
	movementRoom.AddItem(compass)

	// Hall of Inventory
	inventoryPlaque := game.NewItem("plaque", "A detailed plaque explaining inventory management.")
	inventoryPlaque.Takeable = false
	inventoryPlaque.OnUse(readInventoryPlaque)

	sampleCollection := game.NewItem("collection", "A collection of sample items in a small pouch.")
	sampleCollection.OnUse(func(s *game.Session, _ *game.Item) bool {
		return useSampleCollection(s, sampleCollection)
	})

	trinket := game.NewItem("trinket", "A small decorative trinket perfect for practicing inventory commands.")

	inventoryRoom.AddItem(inventoryPlaque)
	inventoryRoom.AddItem(sampleCollection)
	inventoryRoom.AddItem(trinket)

	// Chamber of Interactions
	interactionDisplay := game.NewItem("display", "An interactive display showing item usage mechanics.")
	interactionDisplay.Takeable = false
	interactionDisplay.OnUse(useInteractionDisplay)

	key := game.NewItem("key", "A small key that seems to fit a display case.")

	lockedCase := game.NewItem("case", "A locked display case with something interesting inside.")
	lockedCase.Takeable = false

	itemsRoom.AddItem(interactionDisplay)
	itemsRoom.AddItem(key)
	itemsRoom.AddItem(lockedCase)

	// Workshop of Creation
	creationManual := game.NewItem("manual", "A comprehensive guide to creating your own text adventures.")
	creationManual.Takeable = false
	creationManual.OnUse(readCreationManual)

	notebook := game.NewItem("notebook", "A blank notebook for jotting down game ideas.")
	notebook.OnUse(func(s *game.Session, _ *game.Item) bool {
		return useNotebook(s, notebook)
	})

	creationRoom.AddItem(creationManual)
	creationRoom.AddItem(notebook)

	// The key works on this exact case and nothing else
	key.OnUseWith(lockedCase, func(s *game.Session, target *game.Item) bool {
		return unlockCase(s, target)
	})

	if err := registerCuratorVerbs(d); err != nil {
		return nil, err
	}

	return entrance, nil
}

func registerCuratorVerbs(d *commands.Dispatcher) error {
	for _, pattern := range []string{"talk to curator", "speak to curator"} {
		if err := d.Register(pattern, handleTalkCurator); err != nil {
			return err
		}
	}
	return nil
}

// handleTalkCurator summons the holographic curator. The curator only
// appears inside museum rooms.
func handleTalkCurator(ctx *commands.Context) error {
	s := ctx.Session
	room := ctx.Room()

	if room == nil || !strings.HasPrefix(room.Name, "Museum") {
		s.Say("There's no curator here.", style.Error)
		return nil
	}

	s.Say("A holographic figure appears before you - the museum curator.", style.Speech)
	sayExpanded(s, `"Welcome to the Interactive Learning Museum, {{ .PlayerName }}! I'm the curator."`, style.Speech)
	s.Say(`"Feel free to explore our exhibits and interact with the displays."`, style.Speech)
	s.Say(`"Each room teaches a different aspect of text adventures."`, style.Speech)
	s.Say(`"If you have questions, just ask me about any exhibit!"`, style.Speech)
	return nil
}

func readWelcomeSign(s *game.Session, _ *game.Item) bool {
	rule := strings.Repeat("=", 60)
	s.Say("You read the large welcome sign:", style.Command)
	s.Say(rule, style.System)
	s.Say("WELCOME TO THE INTERACTIVE LEARNING MUSEUM", style.Header)
	s.Say("A hands-on guide to text adventure mechanics", style.System)
	s.Say(strings.Repeat("-", 60), style.System)
	s.Say("This museum is designed to teach you how the Alpha Cloudplex text adventure system works through interactive exhibits.", style.System)
	s.Say("\nOur exhibits include:", style.System)
	s.Say("- Gallery of Movement: Learn navigation commands", style.System)
	s.Say("- Hall of Inventory: Master item management", style.System)
	s.Say("- Chamber of Interactions: Discover object interactions", style.System)
	s.Say("- Workshop of Creation: Design your own adventures", style.System)
	s.Say("\nFeel free to explore, interact with displays, and take items that aren't fixed in place.", style.System)
	s.Say(rule, style.System)
	return true
}

func showMuseumMap(s *game.Session, _ *game.Item) bool {
	s.Say("You unfold the museum map:", style.Command)
	s.Say(museumMap, style.Hint)
	s.Say("\nThe map shows the five main exhibits of the museum.", style.Hint)
	if room := s.State.CurrentRoom; room != nil {
		s.Sayf(style.Hint, "You are currently in the %s.", room.Name)
	}
	return true
}

func readMovementGuide(s *game.Session, _ *game.Item) bool {
	rule := strings.Repeat("=", 60)
	s.Say("You examine the interactive movement guide:", style.Command)
	s.Say(rule, style.System)
	s.Say("NAVIGATING YOUR TEXT ADVENTURE", style.Header)
	s.Say(strings.Repeat("-", 60), style.System)
	s.Say("In Alpha Cloudplex, you can move between locations using these commands:", style.System)
	s.Say("\nBasic direction commands:", style.System)
	s.Say("- north, south, east, west (or n, s, e, w for short)", style.System)
	s.Say("- up, down (or u, d for short)", style.System)
	s.Say("\nAlternative movement commands:", style.System)
	s.Say("- go north, move east, walk west", style.System)
	s.Say("\nTo see where you can go:", style.System)
	s.Say("- look (shows the current room and available exits)", style.System)
	s.Say("\nTry these commands to explore the museum!", style.System)
	s.Say(rule, style.System)
	return true
}

// useCompass points the player back toward the entrance hall.
func useCompass(s *game.Session, _ *game.Item) bool {
	s.Say("You check the compass...", style.Command)

	room := s.State.CurrentRoom
	if room != nil {
		for _, direction := range room.Exits() {
			if to, ok := room.Exit(direction); ok && to.Name == "Museum Entrance Hall" {
				s.Sayf(style.Success, "The needle points %s, toward the Museum Entrance.", direction)
				return true
			}
		}
	}

	s.Say("The needle spins around and points south, indicating the Museum Entrance is that way.", style.Success)
	return true
}

func readInventoryPlaque(s *game.Session, _ *game.Item) bool {
	rule := strings.Repeat("=", 60)
	s.Say("You read the inventory management plaque:", style.Command)
	s.Say(rule, style.System)
	s.Say("INVENTORY MANAGEMENT", style.Header)
	s.Say(strings.Repeat("-", 60), style.System)
	s.Say("Your inventory is the collection of items you're carrying.", style.System)
	s.Say("\nBasic inventory commands:", style.System)
	s.Say("- inventory (or i for short): View what you're carrying", style.System)
	s.Say("- take [item]: Pick up an item from the room", style.System)
	s.Say("- get [item]: Same as take", style.System)
	s.Say("- drop [item]: Remove an item from inventory and place it in the room", style.System)
	s.Say("\nInteracting with items:", style.System)
	s.Say("- examine [item]: Look at an item in detail", style.System)
	s.Say("- look at [item]: Same as examine", style.System)
	s.Say("\nTry picking up the trinket in this room!", style.System)
	s.Say(rule, style.System)
	return true
}

// useSampleCollection spills three practice items into the current room.
// The flag keeps a second use from duplicating them.
func useSampleCollection(s *game.Session, collection *game.Item) bool {
	s.Say("You open the sample collection pouch...", style.Command)
	s.Say("Inside are several tiny labeled items: a coin, a button, and a marble.", style.Success)
	s.Say("This is perfect for practicing inventory management!", style.Success)

	if s.State.Flag(flagSampleCollectionUsed) {
		s.Say("You've already removed the items from the pouch.", style.Hint)
		return true
	}

	room := s.State.CurrentRoom
	room.AddItem(game.NewItem("coin", "A small gold coin with the museum's logo."))
	room.AddItem(game.NewItem("button", "A decorative button made of polished wood."))
	room.AddItem(game.NewItem("marble", "A glass marble with swirling colors inside."))

	s.Inventory.Remove(collection)
	s.State.SetFlag(flagSampleCollectionUsed, true)

	s.Say("You emptied the pouch, placing the items on the floor.", style.Success)
	return true
}

func useInteractionDisplay(s *game.Session, _ *game.Item) bool {
	rule := strings.Repeat("=", 60)
	s.Say("You activate the interaction display:", style.Command)
	s.Say(rule, style.System)
	s.Say("ITEM INTERACTIONS", style.Header)
	s.Say(strings.Repeat("-", 60), style.System)
	s.Say("Items in text adventures can be used on their own or with other items.", style.System)
	s.Say("\nBasic interaction commands:", style.System)
	s.Say("- use [item]: Activate or use an item", style.System)
	s.Say("- use [item] on [target]: Use an item on another item or object", style.System)
	s.Say("- use [item] with [target]: Same as above", style.System)
	s.Say("\nExample interactions:", style.System)
	s.Say("- use key on door: Try to unlock a door with a key", style.System)
	s.Say("- use map: Look at a map item", style.System)
	s.Say("\nTry using the key on the locked case in this room!", style.System)
	s.Say(rule, style.System)
	return true
}

// unlockCase opens the display case, reveals the badge, and rewrites the
// case description. Only works in the Chamber of Interactions, and only
// once.
func unlockCase(s *game.Session, lockedCase *game.Item) bool {
	s.Say("You insert the key into the locked case...", style.Command)

	room := s.State.CurrentRoom
	if room == nil || room.Name != "Chamber of Interactions" {
		s.Say("There's no case here to unlock.", style.Error)
		return false
	}

	if s.State.Flag(flagCaseUnlocked) {
		s.Say("The case is already unlocked.", style.Hint)
		return true
	}

	s.Say("The key fits perfectly! You turn it and the case unlocks with a satisfying click.", style.Success)
	s.Say("Inside the case is a beautiful golden badge that reads 'Expert Adventurer'.", style.Success)

	room.AddItem(game.NewItem("badge", "A golden 'Expert Adventurer' badge. Wearing it shows you understand item interactions."))

	lockedCase.Description = "An unlocked display case that previously held a badge."
	s.State.SetFlag(flagCaseUnlocked, true)

	return true
}

func readCreationManual(s *game.Session, _ *game.Item) bool {
	rule := strings.Repeat("=", 60)
	s.Say("You page through the creation manual:", style.Command)
	s.Say(rule, style.System)
	s.Say("CREATING YOUR OWN ADVENTURES", style.Header)
	s.Say(strings.Repeat("-", 60), style.System)
	s.Say("The Alpha Cloudplex system makes it easy to create your own text adventures!", style.System)
	s.Say("\nBasic steps to create an adventure:", style.System)
	s.Say("1. Define rooms with descriptions", style.System)
	s.Say("2. Connect rooms with exits", style.System)
	s.Say("3. Create items and place them in rooms", style.System)
	s.Say("4. Add callbacks for item interactions", style.System)
	s.Say("5. Define any special commands or behaviors", style.System)
	s.Say("\nExample steps for a simple room:", style.System)
	s.Say(`
    1. Describe a glittering chamber filled with gold and jewels.
    2. Name it "Dragon's Hoard".
    3. Place a magnificent golden crown encrusted with gems inside.
    `, style.Hint)
	s.Say("\nCheck out the TUTORIAL.md file for a comprehensive guide!", style.System)
	s.Say(rule, style.System)
	return true
}

// useNotebook fills in the notebook once it is carried, updating its
// description to match.
func useNotebook(s *game.Session, notebook *game.Item) bool {
	s.Say("You open the notebook and see blank pages ready for your game ideas.", style.Command)
	s.Say("This would be perfect for sketching out room layouts or writing item descriptions.", style.Success)

	if s.Inventory.Contains(notebook) {
		s.Say("\nYou decide to jot down a simple game structure:", style.Success)
		s.Say(`
        My Adventure Game:
        - Starting Room: Forest Clearing
        - Key Locations: Haunted Cabin, Underground Cave, Mountaintop
        - Main Items: Ancient Key, Magic Amulet, Cryptic Map
        - Puzzles: Unlock the cabin, decode the map, activate the amulet
        `, style.Hint)

		notebook.Description = "A notebook with your game ideas sketched inside."
	}

	return true
}
