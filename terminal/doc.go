// Package terminal hosts the intro and the page in a tcell screen.
//
// Geometry is in braille dots: every cell is 2 dots wide and 4 dots tall, so the
// overlay's canvas units map onto render.DotCanvas directly with a pixel ratio of 1.
//
// Input mapping:
//   - Mouse motion: pointermove (mouse)
//   - Left button: pointerdown on press, click on release
//   - Right button drag: emulated touch stream (touchstart, touchmove, touchend)
//   - Enter, Space: keydown
//   - Ctrl-C: quit; q and Esc quit once the intro is gone
package terminal
