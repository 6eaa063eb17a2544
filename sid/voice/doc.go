// Package voice defines the parameter host contract that effects wrap.
//
// A host exposes a free-form namespace of named parameters holding either a
// number or a boolean. Every host defines at least [Frequency] (numeric) and
// [Gate] (boolean). [Voice] is an in-memory host modelled on a single SID
// oscillator voice; chip register encoding and audio rendering live outside
// this module.
package voice
