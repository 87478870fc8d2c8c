// Package console drives the app from a terminal: one command per line,
// with the current screen redrawn after each command.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"immo-map/models"
	"immo-map/services"
	"immo-map/storage"
	"immo-map/ui"
	"immo-map/utils"
)

type Console struct {
	app     *ui.App
	landing *ui.Landing
	csv     *storage.CSVWriter
	out     io.Writer
}

func New(app *ui.App, lang, exportPath string, out io.Writer) *Console {
	c := &Console{
		app:     app,
		landing: ui.NewLanding(lang),
		csv:     storage.NewCSVWriter(exportPath),
		out:     out,
	}
	c.landing.OnAddListing = func() { app.Dispatch(ui.OpenMap{}) }
	c.landing.OnBrowseListings = c.browseListings
	c.landing.OnAddRequest = func() { utils.Warn("Requests are not available yet") }
	c.landing.OnBrowseRequests = func() { utils.Warn("Requests are not available yet") }
	return c
}

// Run reads commands from in until "quit" or end of input.
func (c *Console) Run(in io.Reader) error {
	c.render()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		if err := c.Exec(line); err != nil {
			fmt.Fprintf(c.out, "! %v\n", err)
		}
		c.render()
	}
	return scanner.Err()
}

// Exec runs a single command against whichever screen is showing.
func (c *Console) Exec(line string) error {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd := strings.ToLower(fields[0])

	switch cmd {
	case "help":
		c.help()
		return nil
	case "wait":
		c.app.Wait()
		return nil
	case "show":
		return nil
	}

	if c.app.State().ShowLanding {
		return c.execLanding(cmd)
	}
	return c.execMap(cmd, fields[1:], strings.TrimSpace(line[len(fields[0]):]))
}

func (c *Console) execLanding(cmd string) error {
	switch cmd {
	case "1", "add":
		c.landing.Press(ui.ActionAddListing)
	case "2", "browse":
		c.landing.Press(ui.ActionBrowseListings)
	case "3", "request":
		c.landing.Press(ui.ActionAddRequest)
	case "4", "requests":
		c.landing.Press(ui.ActionBrowseRequests)
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return nil
}

func (c *Console) execMap(cmd string, args []string, rest string) error {
	state := c.app.State()

	switch cmd {
	case "toggle":
		c.app.Dispatch(ui.ToggleAddMode{})

	case "tap":
		if len(args) != 2 {
			return fmt.Errorf("usage: tap LAT LON")
		}
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("latitude: %w", err)
		}
		lon, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("longitude: %w", err)
		}
		c.app.Dispatch(ui.MapTapped{At: models.Coordinate{Latitude: lat, Longitude: lon}})

	case "pin":
		if len(args) != 1 {
			return fmt.Errorf("usage: pin N")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil || i < 0 || i >= len(state.Markers) {
			return fmt.Errorf("no marker #%s", args[0])
		}
		c.app.Dispatch(ui.MarkerTapped{Marker: state.Markers[i]})

	case "price", "rooms", "surface", "description":
		if !state.ModalVisible {
			return fmt.Errorf("the listing form is not open")
		}
		c.app.Dispatch(ui.FieldChanged{Field: models.FormField(cmd), Value: rest})

	case "sell", "rent", "cancel":
		if !state.ModalVisible {
			return fmt.Errorf("the listing form is not open")
		}
		switch cmd {
		case "sell":
			c.app.Dispatch(ui.SubmitSell{})
		case "rent":
			c.app.Dispatch(ui.SubmitRent{})
		default:
			c.app.Dispatch(ui.Cancel{})
		}

	case "back":
		c.app.Dispatch(ui.GoToLanding{})

	case "export":
		if rest != "" {
			return storage.NewCSVWriter(rest).Write(state.Markers)
		}
		return c.csv.Write(state.Markers)

	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return nil
}

func (c *Console) browseListings() {
	markers := c.app.State().Markers
	for i, m := range markers {
		if m.Confirmed() {
			fmt.Fprintf(c.out, "  #%d %s\n", i, strings.Join(m.Callout(), " | "))
		}
	}
	services.PrintReport(c.out, services.Summarize(markers))
}

func (c *Console) render() {
	state := c.app.State()
	if state.ShowLanding {
		c.renderLanding()
		return
	}
	c.renderMap(state)
}

func (c *Console) renderLanding() {
	fmt.Fprintf(c.out, "\n== %s ==\n", c.landing.Title())
	for i, a := range c.landing.Actions() {
		fmt.Fprintf(c.out, "  %d. [%s] %s\n", i+1, a.Icon, a.Label)
	}
}

func (c *Console) renderMap(s ui.State) {
	fmt.Fprintln(c.out)
	if s.Region != nil {
		fmt.Fprintf(c.out, "map %s centered on %.6f, %.6f (±%g)\n", shortKey(s.MapKey), s.Region.Latitude, s.Region.Longitude, s.Region.LatitudeDelta)
	} else {
		fmt.Fprintf(c.out, "map %s (not centered)\n", shortKey(s.MapKey))
	}

	for i, m := range s.Markers {
		ident := "pending key=" + m.Key
		if m.Confirmed() {
			ident = "id=" + string(m.ID)
		}
		fmt.Fprintf(c.out, "  #%d %-4s %-18s (%.5f, %.5f) %s\n",
			i, m.PinColor(), ident, m.Coordinate.Latitude, m.Coordinate.Longitude, strings.Join(m.Callout(), " | "))
	}

	fmt.Fprintf(c.out, "[toggle: %s] [back: Return to Landing Page]\n", s.AddModeLabel())

	if s.ModalVisible {
		fmt.Fprintln(c.out, "-- new listing --")
		fmt.Fprintf(c.out, "  Price:           %s\n", s.Form.Price)
		fmt.Fprintf(c.out, "  Number of rooms: %s\n", s.Form.Rooms)
		fmt.Fprintf(c.out, "  Surface:         %s\n", s.Form.Surface)
		fmt.Fprintf(c.out, "  Description:     %s\n", s.Form.Description)
		fmt.Fprintln(c.out, "  [sell] [rent] [cancel]")
	}
}

func (c *Console) help() {
	fmt.Fprintln(c.out, "landing: 1|add  2|browse  3|request  4|requests")
	fmt.Fprintln(c.out, "map:     toggle  tap LAT LON  pin N  back  export [PATH]")
	fmt.Fprintln(c.out, "form:    price|rooms|surface|description VALUE  sell  rent  cancel")
	fmt.Fprintln(c.out, "any:     show  wait  help  quit")
}

func shortKey(k string) string {
	if k == "" {
		return "-"
	}
	if len(k) > 8 {
		return k[:8]
	}
	return k
}
