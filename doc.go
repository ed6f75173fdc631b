/*
Package colour computes first order colour correction matrices from
corresponding tristimulus measurements, for example for matching two
photographs of the same ColorChecker colour rendition chart taken under
different conditions.

The fit is a 3x3 linear transform obtained by ordinary least squares, one
regression per output channel. FirstOrderFit produces the matrix,
CorrectColors applies it to an image, and the chart subpackage turns chart
photographs into the sample matrices the fit consumes.
*/
package colour
