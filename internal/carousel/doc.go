// Package carousel implements the selection and offset state machine behind a
// swipeable, fluid-width carousel.
//
// The package is host agnostic. A host supplies the ordered items (Source), the
// geometry it measures (Metrics) and the element it translates (Surface), then
// forwards pointer, resize and structural-change notifications to a Controller.
// Style writes are deferred to the next display frame: the host calls
// Controller.Frame once per refresh tick while Controller.NeedsFrame reports true.
package carousel
