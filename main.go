package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hukka/go-weekend-raytracer/pkg/display"
	"github.com/hukka/go-weekend-raytracer/pkg/ppm"
	"github.com/hukka/go-weekend-raytracer/pkg/renderer"
	"github.com/hukka/go-weekend-raytracer/pkg/scene"
	"github.com/hukka/go-weekend-raytracer/web/server"
)

func main() {
	// Parse command line flags
	binary := flag.Bool("binary", false, "Write a raw (P6) pixmap instead of plain text (P3)")
	window := flag.Bool("window", false, "Show the render in a live window instead of writing a pixmap")
	web := flag.Bool("web", false, "Serve the render over HTTP instead of writing a pixmap")
	port := flag.Int("port", 8080, "Port for the web server")
	flag.Parse()

	rt := renderer.NewRaytracer(scene.NewDefaultScene())

	var err error
	switch {
	case *window:
		err = display.Run(rt)
	case *web:
		err = server.NewServer(*port, rt).Start()
	case *binary:
		err = ppm.WriteBinary(os.Stdout, rt)
	default:
		err = ppm.WriteASCII(os.Stdout, rt)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
