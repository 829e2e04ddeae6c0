/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/ghodss/yaml"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/gridglue/mesh"
	"github.com/notargets/gridglue/nmf"
	"github.com/notargets/gridglue/plot3d"
)

type GlueParameters struct {
	Title       string `yaml:"Title"`
	MappingFile string `yaml:"MappingFile"`
	GridFile    string `yaml:"GridFile"`
	OutFile     string `yaml:"OutFile"`
	Verbose     bool   `yaml:"Verbose"`
}

func (gp *GlueParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, gp)
}

// GlueCmd represents the glue command
var GlueCmd = &cobra.Command{
	Use:   "glue",
	Short: "Glue a multi-block structured grid into a single unstructured mesh",
	Long: `Reads a neutral map file and a multi-block Plot3D grid, resolves the
block interface topology and produces a flat unstructured mesh with a
single global numbering of cells, faces and nodes.

gridglue glue -m mapping.nmf -g grid.xyz`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		gp := &GlueParameters{}
		caseFile, _ := cmd.Flags().GetString("caseFile")
		if len(caseFile) != 0 {
			var data []byte
			if data, err = ioutil.ReadFile(caseFile); err != nil {
				panic(err)
			}
			if err = gp.Parse(data); err != nil {
				panic(err)
			}
		}
		if mf, _ := cmd.Flags().GetString("mappingFile"); len(mf) != 0 {
			gp.MappingFile = mf
		}
		if gf, _ := cmd.Flags().GetString("gridFile"); len(gf) != 0 {
			gp.GridFile = gf
		}
		if of, _ := cmd.Flags().GetString("outFile"); len(of) != 0 {
			gp.OutFile = of
		}
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			gp.Verbose = true
		}
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start().Stop()
		}
		RunGlue(gp)
	},
}

func init() {
	rootCmd.AddCommand(GlueCmd)
	GlueCmd.Flags().StringP("mappingFile", "m", "", "Neutral map file describing the block interface topology")
	GlueCmd.Flags().StringP("gridFile", "g", "", "Grid file to read in Plot3D (.xyz) whole format")
	GlueCmd.Flags().StringP("outFile", "o", "", "Write the formalized neutral map file back out to this path")
	GlueCmd.Flags().StringP("caseFile", "c", "", "YAML case file supplying the input files like:\n\t- MappingFile\n\t- GridFile")
	GlueCmd.Flags().BoolP("verbose", "v", false, "log per-block numbering detail")
	GlueCmd.Flags().Bool("profile", false, "generate a runtime profile of the gluing")
}

func RunGlue(gp *GlueParameters) {
	var (
		err      error
		willExit bool
	)
	if len(gp.MappingFile) == 0 {
		err = fmt.Errorf("must supply a neutral map file (-m, --mappingFile)")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if len(gp.GridFile) == 0 {
		err = fmt.Errorf("must supply a grid file (-g, --gridFile) in Plot3D (.xyz) format")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}
	if gp.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if len(gp.Title) != 0 {
		fmt.Printf("\"%s\"\t\t= Title\n", gp.Title)
	}

	mp, err := nmf.ReadFile(gp.MappingFile)
	if err != nil {
		fmt.Printf("error reading %s: %s\n", gp.MappingFile, err.Error())
		os.Exit(1)
	}
	g, err := plot3d.ReadFile(gp.GridFile)
	if err != nil {
		fmt.Printf("error reading %s: %s\n", gp.GridFile, err.Error())
		os.Exit(1)
	}
	msh, err := mesh.Glue(mp, g)
	if err != nil {
		fmt.Printf("error gluing grid: %s\n", err.Error())
		os.Exit(1)
	}
	msh.PrintStatistics()

	if len(gp.OutFile) != 0 {
		if err = mp.WriteFile(gp.OutFile); err != nil {
			fmt.Printf("error writing %s: %s\n", gp.OutFile, err.Error())
			os.Exit(1)
		}
	}
}
