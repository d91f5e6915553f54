package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type BlockParameters struct {
	Title            string  `yaml:"Title"`
	CoordinateSystem string  `yaml:"CoordinateSystem"`
	NGhost           int     `yaml:"NGhost"`
	Nx1              int     `yaml:"Nx1"`
	Nx2              int     `yaml:"Nx2"`
	Nx3              int     `yaml:"Nx3"`
	X1Min            float64 `yaml:"X1Min"`
	X1Max            float64 `yaml:"X1Max"`
	X2Min            float64 `yaml:"X2Min"`
	X2Max            float64 `yaml:"X2Max"`
	X3Min            float64 `yaml:"X3Min"`
	X3Max            float64 `yaml:"X3Max"`
	Gamma            float64 `yaml:"Gamma"`
	CFL              float64 `yaml:"CFL"`
	FinalTime        float64 `yaml:"FinalTime"`
}

func (bp *BlockParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, bp); err != nil {
		return err
	}
	if bp.NGhost == 0 {
		bp.NGhost = 2
	}
	return nil
}

func (bp *BlockParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", bp.Title)
	fmt.Printf("[%s]\t\t= Coordinate System\n", bp.CoordinateSystem)
	fmt.Printf("[%d %d %d]\t\t= Block Cells (Nx1 Nx2 Nx3)\n", bp.Nx1, bp.Nx2, bp.Nx3)
	fmt.Printf("[%d]\t\t\t\t= Ghost Cells per Side\n", bp.NGhost)
	fmt.Printf("[%8.5f, %8.5f]\t= X1 Range\n", bp.X1Min, bp.X1Max)
	fmt.Printf("[%8.5f, %8.5f]\t= X2 Range\n", bp.X2Min, bp.X2Max)
	fmt.Printf("[%8.5f, %8.5f]\t= X3 Range\n", bp.X3Min, bp.X3Max)
	fmt.Printf("%8.5f\t\t= Gamma\n", bp.Gamma)
	fmt.Printf("%8.5f\t\t= CFL\n", bp.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", bp.FinalTime)
}
