package shell

import (
	"fmt"

	"github.com/rmrobinson/routebook/services/routes"
	"go.uber.org/zap"
)

type command struct {
	name    string
	arg     string
	summary string

	run func(s *Shell, arg string) (bool, error)
}

func (c *command) usage() string {
	if len(c.arg) > 0 {
		return c.name + " " + c.arg
	}
	return c.name
}

func defaultCommands() []*command {
	return []*command{
		{name: "add", summary: "add a route", run: addRoute},
		{name: "list", summary: "list all routes", run: listRoutes},
		{name: "select", arg: "<HH:MM>", summary: "list routes departing after the given time", run: selectRoutes},
		{name: "load", arg: "<file>", summary: "load routes from a file", run: loadRoutes},
		{name: "save", arg: "<file>", summary: "save routes to a file", run: saveRoutes},
		{name: "help", summary: "show this help", run: showHelp},
		{name: "exit", summary: "quit the program", run: exitShell},
	}
}

func addRoute(s *Shell, _ string) (bool, error) {
	destination, err := s.readField("Destination? ")
	if err != nil {
		return false, err
	}
	numberText, err := s.readField("Number? ")
	if err != nil {
		return false, err
	}
	timeText, err := s.readField("Time? ")
	if err != nil {
		return false, err
	}

	number, err := routes.ParseNumber(numberText)
	if err != nil {
		return false, err
	}
	if err = s.store.Add(destination, number, timeText); err != nil {
		return false, err
	}

	s.logger.Info("added route",
		zap.String("destination", destination),
		zap.Int("number", number),
		zap.String("time", timeText),
	)
	return false, nil
}

func listRoutes(s *Shell, _ string) (bool, error) {
	fmt.Fprintln(s.out, s.store.Render())

	s.logger.Info("listed routes",
		zap.Int("route_count", s.store.Len()),
	)
	return false, nil
}

func selectRoutes(s *Shell, arg string) (bool, error) {
	selected, err := s.store.Select(arg)
	if err != nil {
		return false, err
	}

	if len(selected) < 1 {
		fmt.Fprintln(s.out, "No routes found.")
		s.logger.Warn("no routes departing after time",
			zap.String("time", arg),
		)
		return false, nil
	}

	for idx, r := range selected {
		fmt.Fprintf(s.out, "%4d: %s\n", idx+1, r.Destination)
	}
	s.logger.Info("selected routes",
		zap.String("time", arg),
		zap.Int("route_count", len(selected)),
	)
	return false, nil
}

func loadRoutes(s *Shell, arg string) (bool, error) {
	return false, s.Load(arg)
}

func saveRoutes(s *Shell, arg string) (bool, error) {
	return false, s.Save(arg)
}

func showHelp(s *Shell, _ string) (bool, error) {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out)
	for _, cmd := range s.commands {
		fmt.Fprintf(s.out, "  %-16s %s\n", cmd.usage(), cmd.summary)
	}
	return false, nil
}

func exitShell(_ *Shell, _ string) (bool, error) {
	return true, nil
}
