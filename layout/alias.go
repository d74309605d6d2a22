package layout

import "gioui.org/layout"

type Context = layout.Context
type Dimensions = layout.Dimensions
type Constraints = layout.Constraints
type Flex = layout.Flex
type FlexChild = layout.FlexChild
type Spacer = layout.Spacer
type Widget = layout.Widget
type Inset = layout.Inset
type Axis = layout.Axis

var UniformInset = layout.UniformInset
var Rigid = layout.Rigid
var Flexed = layout.Flexed
var Exact = layout.Exact
var NewContext = layout.NewContext

const (
	Horizontal Axis = layout.Horizontal
	Vertical   Axis = layout.Vertical
)
