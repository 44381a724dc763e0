/*
Copyright © 2024 the TerraTracer authors.
This file is part of TerraTracer.

TerraTracer is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

TerraTracer is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with TerraTracer.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package terrautil wires the TerraTracer engine to the command line.
package terrautil

import (
	"errors"
	"fmt"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/terratracer/terratracer"
	"github.com/terratracer/terratracer/export"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to TerraTracer.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "OutputDir",
			usage: `
              OutputDir is the directory that the kml, json, geojson and shp
              output directories are created under.`,
			shorthand:  "o",
			defaultVal: "saves",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogDir",
			usage: `
              LogDir is the directory that per-session log files are
              written to.`,
			defaultVal: "logs",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Creator",
			usage: `
              Creator is recorded in the metadata of exported documents.`,
			defaultVal: "TerraTracer",
			flagsets:   []*pflag.FlagSet{traceCmd.Flags()},
		},
		{
			name: "ClosureToleranceFeet",
			usage: `
              ClosureToleranceFeet is the distance between a ring's first and
              last vertex below which the ring is snapped closed.`,
			defaultVal: float64(terratracer.DefaultToleranceFeet),
			flagsets:   []*pflag.FlagSet{traceCmd.Flags(), convertCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("TERRATRACER")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(traceCmd)
	Root.AddCommand(convertCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("terratracer: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "terratracer",
	Short: "A survey-plat digitizer.",
	Long: `TerraTracer digitizes survey plats described as metes and bounds: an
optional tie point and a sequence of bearing/distance calls are turned into
polygon vertices on the WGS84 ellipsoid and exported as KML, JSON, GeoJSON
and shapefile documents.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'TERRATRACER_var' where
'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of TerraTracer.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("TerraTracer v%s\n", terratracer.Version)
	},
	DisableAutoGenTag: true,
}

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Digitize a polygon interactively.",
	Long: `trace walks through one digitizing session: an optional tie point
and monument, then a sequence of bearing/distance calls. The resulting ring
is closed automatically and may be exported as KML, JSON, GeoJSON and
shapefile documents.`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(Cfg.GetString("LogDir"))
		if err != nil {
			return err
		}
		p := NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		name := p.PolygonName()
		b := &terratracer.Builder{
			In:      p,
			Out:     p,
			Geo:     terratracer.NewStepper(),
			Creator: Cfg.GetString("Creator"),
			Log:     log,
		}
		rec, logRec, err := b.Run(name)
		if err != nil {
			if errors.Is(err, terratracer.ErrCancelled) || errors.Is(err, terratracer.ErrNoPoints) {
				fmt.Fprintln(cmd.OutOrStdout(), "Data gathering was not completed. Exiting.")
				return nil
			}
			return err
		}

		closer := terratracer.NewCloser(log)
		closer.ToleranceFeet = Cfg.GetFloat64("ClosureToleranceFeet")
		if _, err := closer.Resolve(rec); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Warning: %v\n", err)
		}
		if desc := export.MetesAndBounds(logRec); desc != "" {
			fmt.Fprintln(cmd.OutOrStdout(), desc)
		}

		if !p.ExportDecision() {
			fmt.Fprintln(cmd.OutOrStdout(), "Export cancelled by the user.")
			return nil
		}
		choice := p.FileTypeChoice()
		dirs, err := export.EnsureDirectories(Cfg.GetString("OutputDir"))
		if err != nil {
			return err
		}
		base := p.Filename(export.Filename(name))
		paths := dirs.Paths(base)
		for paths.Collides() {
			fmt.Fprintln(cmd.OutOrStdout(), "A file with that name already exists. Please choose a different filename.")
			base = p.Filename(export.Filename(name))
			paths = dirs.Paths(base)
		}
		exportFormats(cmd, log, choice, paths, rec, logRec, name)
		return nil
	},
}

// exportFormats writes each selected format. One format's failure is
// logged and reported but does not prevent the others from being attempted.
func exportFormats(cmd *cobra.Command, log logrus.FieldLogger, choice string, paths export.Paths, rec *terratracer.PolygonRecord, logRec *terratracer.LogRecord, name string) {
	w := cmd.OutOrStdout()
	if choice == "K" || choice == "A" {
		content, err := export.KML(rec, name)
		if err == nil {
			err = export.WriteKML(paths.KML, content)
		}
		if err != nil {
			log.WithError(err).Error("failed to export KML file")
			fmt.Fprintf(w, "Failed to export KML file: %v\n", err)
		} else {
			log.Infof("KML file exported successfully: %s", paths.KML)
			fmt.Fprintf(w, "KML file exported successfully: %s\n", paths.KML)
		}
	}
	if choice == "D" || choice == "A" {
		if err := export.WriteJSON(paths.JSON, logRec, rec.TiePoint != nil); err != nil {
			log.WithError(err).Error("failed to export JSON file")
			fmt.Fprintf(w, "Failed to export JSON file: %v\n", err)
		} else {
			fmt.Fprintf(w, "JSON file exported successfully: %s\n", paths.JSON)
		}
	}
	if choice == "G" || choice == "A" {
		if err := export.WriteGeoJSON(paths.GeoJSON, rec, logRec); err != nil {
			log.WithError(err).Error("failed to export GeoJSON file")
			fmt.Fprintf(w, "Failed to export GeoJSON file: %v\n", err)
		} else {
			fmt.Fprintf(w, "GeoJSON file exported successfully: %s\n", paths.GeoJSON)
		}
	}
	if choice == "S" || choice == "A" {
		if err := export.WriteShapefile(paths.Shapefile, rec, name); err != nil {
			log.WithError(err).Error("failed to export shapefile")
			fmt.Fprintf(w, "Failed to export shapefile: %v\n", err)
		} else {
			fmt.Fprintf(w, "Shapefile exported successfully: %s\n", paths.Shapefile)
		}
	}
}
