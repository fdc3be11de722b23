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
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/neumesh/InputParameters"
	"github.com/notargets/neumesh/mesh"
	"github.com/notargets/neumesh/readers"
	"github.com/notargets/neumesh/writers"
)

type ExportModel struct {
	GridFile    string
	ParamsFile  string
	OutputFile  string
	Description string
	Verbose     bool
}

// ExportCmd represents the export command
var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a mesh and its tagged boundary faces as a Gambit neutral file",
	Long: `
Reads a mesh (.neu, or a .yaml/.json/.jsonc mesh description) and writes it in
Gambit neutral format. Boundary conditions come from the input parameters file,
or from the mesh file itself when it is a neutral file.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		em := &ExportModel{}
		if em.GridFile, err = cmd.Flags().GetString("gridFile"); err != nil {
			return
		}
		if em.ParamsFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			return
		}
		if em.OutputFile, err = cmd.Flags().GetString("output"); err != nil {
			return
		}
		em.Description = viper.GetString("description")
		em.Verbose = viper.GetBool("verbose")
		var out io.Writer = cmd.OutOrStdout()
		if len(em.OutputFile) != 0 {
			var file *os.File
			if file, err = os.Create(em.OutputFile); err != nil {
				return
			}
			// The writer closes it on success
			defer file.Close()
			out = file
		} else {
			// Hide Close so stdout stays open
			out = struct{ io.Writer }{out}
		}
		return RunExport(em, out)
	},
}

func init() {
	rootCmd.AddCommand(ExportCmd)
	ExportCmd.Flags().StringP("gridFile", "F", "", "mesh file to read (.neu, .yaml, .yml, .json, .jsonc)")
	ExportCmd.Flags().StringP("inputParametersFile", "I", "", "boundary condition parameters (.yaml, .json, .jsonc, .toml)")
	ExportCmd.Flags().StringP("output", "o", "", "neutral file to write, stdout if empty")
	ExportCmd.Flags().String("description", "", "description line of the neutral file header")
	_ = viper.BindPFlag("description", ExportCmd.Flags().Lookup("description"))
}

// ExportSetup is what RunExport hands to the writer
type ExportSetup struct {
	File        *readers.MeshFile
	BCs         mesh.BCSpec
	Periodicity *mesh.Periodicity
	Description string
}

func processExportInput(em *ExportModel) (es *ExportSetup, err error) {
	if len(em.GridFile) == 0 {
		return nil, fmt.Errorf("must supply a mesh file (-F, --gridFile)")
	}
	es = &ExportSetup{}
	if es.File, err = readers.ReadMeshFile(em.GridFile, em.Verbose); err != nil {
		return nil, err
	}
	es.BCs, es.Periodicity = es.File.BCs, es.File.Periodicity
	es.Description = es.File.Description
	if len(em.ParamsFile) != 0 {
		var ip *InputParameters.ExportParameters
		if ip, err = InputParameters.ReadExportParameters(em.ParamsFile); err != nil {
			return nil, err
		}
		if em.Verbose {
			ip.Print(os.Stderr)
		}
		es.BCs, es.Periodicity = ip.BCSpec(), ip.PeriodicitySpec()
		if len(ip.Title) != 0 {
			es.Description = ip.Title
		}
	}
	if len(em.Description) != 0 {
		es.Description = em.Description
	}
	return
}

func RunExport(em *ExportModel, out io.Writer) (err error) {
	var es *ExportSetup
	if es, err = processExportInput(em); err != nil {
		return
	}
	nw := writers.NewNeutralWriter()
	if len(es.Description) != 0 {
		nw.Description = es.Description
	}
	logger := log.WithFields(log.Fields{
		"mesh":     em.GridFile,
		"points":   es.File.Mesh.NumPoints(),
		"elements": es.File.Mesh.NumElements(),
		"bcs":      len(es.BCs),
	})
	logger.Debug("writing neutral file")
	if err = nw.Write(out, es.File.Mesh, es.BCs, es.Periodicity); err != nil {
		return fmt.Errorf("export of %s: %w", em.GridFile, err)
	}
	logger.Debug("done")
	return
}
