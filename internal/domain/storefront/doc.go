// Package storefront contiene el estado compartido de una sesión de compra:
// carrito, lista de deseos, notificaciones para el administrador y sesión de usuario.
//
// Invariantes:
//   - una línea del carrito por producto y siempre con cantidad > 0;
//   - la lista de deseos no repite productos;
//   - el feed de notificaciones conserva solo las 20 más recientes (más nueva primero).
//
// El mismo contenedor lo usan la API (totales del carrito, feed de administración)
// y el cliente de terminal (estado local de la tienda).
package storefront
