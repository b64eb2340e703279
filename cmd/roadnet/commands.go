package main

import (
	"fmt"
	"io"
	"strings"
)

type ShowCommand struct {
	File string `arg:"" help:"Road list (source,target,weight per line)."`
}

func (c *ShowCommand) Run(g GlobalFlags, out io.Writer) error {
	n, err := g.Load(c.File)
	if err != nil {
		return err
	}

	return g.Render(out, n, n.DirectDistances())
}

type AllCommand struct {
	File string `arg:"" help:"Road list (source,target,weight per line)."`
}

func (c *AllCommand) Run(g GlobalFlags, out io.Writer) error {
	n, err := g.Load(c.File)
	if err != nil {
		return err
	}

	return g.Render(out, n, n.AllShortestDistances())
}

type ConnectedCommand struct {
	File string `arg:"" help:"Road list (source,target,weight per line)."`
}

func (c *ConnectedCommand) Run(g GlobalFlags, out io.Writer) error {
	n, err := g.Load(c.File)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, n.IsStronglyConnected())

	return err
}

type DistanceCommand struct {
	File string `arg:"" help:"Road list (source,target,weight per line)."`
	From string `arg:"" help:"Starting intersection."`
	To   string `arg:"" help:"Destination intersection."`
}

func (c *DistanceCommand) Run(g GlobalFlags, out io.Writer) error {
	n, err := g.Load(c.File)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, n.ShortestDistance(c.From, c.To))

	return err
}

type RouteCommand struct {
	File string `arg:"" help:"Road list (source,target,weight per line)."`
	From string `arg:"" help:"Starting intersection."`
	To   string `arg:"" help:"Destination intersection."`
}

func (c *RouteCommand) Run(g GlobalFlags, out io.Writer) error {
	n, err := g.Load(c.File)
	if err != nil {
		return err
	}
	route, d, err := n.ShortestRoute(c.From, c.To)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s (%d)\n", strings.Join(route, " -> "), d)

	return err
}
