// Package editor implements mouse-gesture editing of freeform curves. It
// translates press/drag/release events into drawing, extending, erasing,
// merging and reworking of polyline curves on a scene.
/*

A gesture is a press, a run of drags and a release. What a gesture means is
decided on the press, from what lies under the cursor:

   empty canvas            -> draw a new curve
   near a curve's end node -> resume drawing that curve from its end
   near a curve's interior -> rework the curve (grow a tendril, see below)
   erase modifier held     -> rub out nodes under the cursor

All proximity decisions are made in pixel space, so that a gesture feels the
same at every zoom level. The editor therefore never touches a concrete GUI
toolkit: callers feed it events carrying both the pixel position and the
position mapped into curve coordinates, together with a View that maps
coordinates the other way.

# Smoothing

Raw pointer input is noisy. While drawing, newly sampled positions are not
appended verbatim but passed through a first-order exponential filter,

   c = s*u + (1-s)*c_prev

with u the sampled cursor position and c_prev the last curve node. This is
the classic exponentially weighted moving average; see for instance

   R.G. Brown: Smoothing, Forecasting and Prediction of Discrete Time Series.
   Prentice-Hall, 1963

or

   S.W. Roberts: Control Chart Tests Based on Geometric Moving Averages.
   Technometrics, Vol. 1, No. 3, 1959

The filter trades a slight lag for visibly calmer curves.

# Tendrils

Reworking the interior of a curve is done through a tendril: a short
excursion of extra nodes spliced into the curve at the grab point. While the
user drags, the tendril grows from its tip; the spliced nodes double back on
themselves, so the curve stays connected at all times. Dragging the tip onto
another stretch of the same curve reconnects it there and drops the stretch
in between. Releasing the mouse mid-air instead retracts the tendril and
restores the curve exactly.

BSD License

Copyright (c) the Lumiviz Authors

All rights reserved.

Please refer to the license file for more information.
*/
package editor
